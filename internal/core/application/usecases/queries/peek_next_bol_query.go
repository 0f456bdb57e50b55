package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrPeekNextBOLQueryIsNotConstructed = errors.New(
	"PeekNextBOLQuery must be created via NewPeekNextBOLQuery constructor",
)

// PeekNextBOLQuery previews the number the next promotion would issue this
// month. The answer is advisory: a concurrent promotion may take it first.
type PeekNextBOLQuery struct {
	guard guard.ConstructorGuard
}

func NewPeekNextBOLQuery() PeekNextBOLQuery {
	return PeekNextBOLQuery{guard: guard.NewConstructorGuard()}
}

func (q PeekNextBOLQuery) Validate() error {
	return q.guard.Validate(ErrPeekNextBOLQueryIsNotConstructed)
}

type PeekNextBOLQueryResponse struct {
	BillOfLading string `json:"billOfLading"`
}
