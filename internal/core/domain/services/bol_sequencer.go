package services

import (
	"time"

	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/pkg/errs"
)

// BOLSequencer derives the next bill of lading number for the calendar month
// of now from the numbers already issued.
//
// Business rules:
//   - only numbers shaped YYMMNNN with the current month prefix count
//   - the next sequence is the highest existing one plus one, or 001
//   - a month that already issued 999 numbers cannot issue another
//
// The sequencer is pure. Reserving the result requires running it inside the
// transaction that writes it, under a lock on the month prefix.
//
// Example usage:
//
//	next, err := services.NewBOLSequencer().Next(clock.Now(), existing)
//	// existing = ["2501001", "2501002", "2412040"] at 2025-01-15 -> "2501003"
type BOLSequencer struct{}

func NewBOLSequencer() BOLSequencer {
	return BOLSequencer{}
}

func (BOLSequencer) Next(now time.Time, existing []string) (bol.Number, error) {
	prefix := bol.Prefix(now)

	highest := 0
	for _, raw := range existing {
		n, err := bol.Parse(raw)
		if err != nil || n.Prefix() != prefix {
			continue
		}
		if n.Sequence() > highest {
			highest = n.Sequence()
		}
	}

	if highest >= bol.MaxSequence {
		return bol.Number{}, errs.NewValueIsOutOfRangeError("bol sequence", highest+1, bol.MinSequence, bol.MaxSequence)
	}

	return bol.NewNumber(prefix, highest+1)
}
