// Package bol provides the bill-of-lading number value object.
//
// A number is the calendar month prefix YYMM followed by a three digit,
// zero padded sequence: 2501001 is the first bill of lading of January 2025.
package bol

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	MinSequence = 1
	MaxSequence = 999
)

var (
	numberPattern = regexp.MustCompile(`^(\d{4})(\d{3})$`)
	prefixPattern = regexp.MustCompile(`^\d{4}$`)
)

var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError("bill of lading number")

type Number struct {
	prefix   string
	sequence int

	guard guard.ConstructorGuard
}

// Prefix returns the YYMM month key for t.
func Prefix(t time.Time) string {
	return t.Format("0601")
}

func NewNumber(prefix string, sequence int) (Number, error) {
	if !prefixPattern.MatchString(prefix) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("bol prefix", fmt.Errorf("%q is not YYMM", prefix))
	}
	if sequence < MinSequence || sequence > MaxSequence {
		return Number{}, errs.NewValueIsOutOfRangeError("bol sequence", sequence, MinSequence, MaxSequence)
	}
	return Number{prefix: prefix, sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

// Parse reads a stored number. Anything not shaped like YYMMNNN is rejected.
func Parse(s string) (Number, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("bill of lading number", fmt.Errorf("%q is not YYMMNNN", s))
	}
	seq, err := strconv.Atoi(m[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("bill of lading number", err)
	}
	return NewNumber(m[1], seq)
}

func (n Number) Prefix() string {
	return n.prefix
}

func (n Number) Sequence() int {
	return n.sequence
}

func (n Number) String() string {
	return fmt.Sprintf("%s%03d", n.prefix, n.sequence)
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}
