package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListSplitLoadDeductionsQueryIsNotConstructed = errors.New(
	"ListSplitLoadDeductionsQuery must be created via NewListSplitLoadDeductionsQuery constructor",
)

// ListSplitLoadDeductionsQuery reads the manual split-load deductions that pay
// accounting attached to orders on a truckload.
type ListSplitLoadDeductionsQuery struct {
	truckloadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListSplitLoadDeductionsQuery(truckloadID kernel.UUID) (ListSplitLoadDeductionsQuery, error) {
	if err := truckloadID.Validate(); err != nil {
		return ListSplitLoadDeductionsQuery{}, err
	}
	return ListSplitLoadDeductionsQuery{truckloadID: truckloadID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSplitLoadDeductionsQuery) Validate() error {
	return q.guard.Validate(ErrListSplitLoadDeductionsQueryIsNotConstructed)
}

func (q ListSplitLoadDeductionsQuery) TruckloadID() kernel.UUID {
	return q.truckloadID
}

type SplitLoadDeduction struct {
	ID         string          `json:"id" db:"id"`
	OrderID    string          `json:"orderId" db:"order_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	AppliesTo  string          `json:"appliesTo" db:"applies_to"`
	IsAddition bool            `json:"isAddition" db:"is_addition"`
	Comment    string          `json:"comment" db:"comment"`
}
