package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrFindOrderDriftQueryIsNotConstructed = errors.New(
	"FindOrderDriftQuery must be created via NewFindOrderDriftQuery constructor",
)

// FindOrderDriftQuery lists orders whose stored status or transfer flag is
// not what their current legs derive to.
type FindOrderDriftQuery struct {
	guard guard.ConstructorGuard
}

func NewFindOrderDriftQuery() FindOrderDriftQuery {
	return FindOrderDriftQuery{guard: guard.NewConstructorGuard()}
}

func (q FindOrderDriftQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderDriftQueryIsNotConstructed)
}

type OrderDrift struct {
	OrderID          string `json:"orderId"`
	Status           string `json:"status"`
	IsTransferOrder  bool   `json:"isTransferOrder"`
	ExpectedTransfer bool   `json:"expectedTransfer"`
	StatusMatches    bool   `json:"statusMatches"`
}
