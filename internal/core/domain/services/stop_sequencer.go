package services

import (
	"sort"

	"dispatch/internal/core/domain/model/assignment"
)

// StopSequencer maintains the stop order of a single truckload.
//
// Business rules:
//   - after a removal, remaining stops are renumbered 1..N
//   - renumbering keeps the previous relative order; ties on the previous
//     sequence number are broken by assignment id so the result is stable
//   - appending places a stop after the current last one
//   - inserting at an occupied position moves that stop and every later one
//     down by one; a position past the end is clamped to the end
//
// Example usage:
//
//	changed, err := services.NewStopSequencer().Resequence(remaining)
//	for _, a := range changed {
//	    _ = repo.Update(ctx, a)
//	}
type StopSequencer struct{}

func NewStopSequencer() StopSequencer {
	return StopSequencer{}
}

// Resequence renumbers stops to 1..N in place and returns only the stops whose
// sequence number changed, in their new order.
func (StopSequencer) Resequence(stops []*assignment.Assignment) ([]*assignment.Assignment, error) {
	ordered := make([]*assignment.Assignment, len(stops))
	copy(ordered, stops)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SequenceNumber() != ordered[j].SequenceNumber() {
			return ordered[i].SequenceNumber() < ordered[j].SequenceNumber()
		}
		return ordered[i].ID().Less(ordered[j].ID())
	})

	changed := make([]*assignment.Assignment, 0, len(ordered))
	for i, stop := range ordered {
		want := i + 1
		if stop.SequenceNumber() == want {
			continue
		}
		if err := stop.MoveTo(want); err != nil {
			return nil, err
		}
		changed = append(changed, stop)
	}

	return changed, nil
}

// NextSequence returns the position after the current last stop, or 1 for an
// empty truckload.
func (StopSequencer) NextSequence(stops []*assignment.Assignment) int {
	highest := 0
	for _, stop := range stops {
		if stop.SequenceNumber() > highest {
			highest = stop.SequenceNumber()
		}
	}
	return highest + 1
}

// InsertAt opens position n for a new stop and returns the position to use
// together with the stops that moved one place down, highest first. A position
// below 1 or past the end means "after the last stop".
func (s StopSequencer) InsertAt(stops []*assignment.Assignment, n int) (int, []*assignment.Assignment, error) {
	next := s.NextSequence(stops)
	if n < 1 || n > next {
		n = next
	}

	shifted := make([]*assignment.Assignment, 0, len(stops))
	for _, stop := range stops {
		if stop.SequenceNumber() >= n {
			shifted = append(shifted, stop)
		}
	}
	sort.SliceStable(shifted, func(i, j int) bool {
		return shifted[i].SequenceNumber() > shifted[j].SequenceNumber()
	})

	for _, stop := range shifted {
		if err := stop.MoveTo(stop.SequenceNumber() + 1); err != nil {
			return 0, nil, err
		}
	}

	return n, shifted, nil
}

// IsDense reports whether sequence numbers are exactly 1..N with no gaps or
// duplicates, in any order.
func (StopSequencer) IsDense(sequenceNumbers []int) bool {
	seen := make([]bool, len(sequenceNumbers)+1)
	for _, n := range sequenceNumbers {
		if n < 1 || n > len(sequenceNumbers) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
