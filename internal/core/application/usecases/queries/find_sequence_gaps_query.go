package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrFindSequenceGapsQueryIsNotConstructed = errors.New(
	"FindSequenceGapsQuery must be created via NewFindSequenceGapsQuery constructor",
)

// FindSequenceGapsQuery lists truckloads whose stop sequence numbers are not
// exactly 1..N. Reordering accepts any numbers, so such truckloads are
// reported rather than rejected.
type FindSequenceGapsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindSequenceGapsQuery() FindSequenceGapsQuery {
	return FindSequenceGapsQuery{guard: guard.NewConstructorGuard()}
}

func (q FindSequenceGapsQuery) Validate() error {
	return q.guard.Validate(ErrFindSequenceGapsQueryIsNotConstructed)
}

type SequenceGap struct {
	TruckloadID     string `json:"truckloadId"`
	SequenceNumbers []int  `json:"sequenceNumbers"`
}
