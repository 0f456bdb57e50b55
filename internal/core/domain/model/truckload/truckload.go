package truckload

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrTruckloadIsNotConstructed = errors.New("Truckload must be created via NewDraftTruckload constructor")

// Truckload is a driver's run over a date range. It receives a bill of lading
// number once, on promotion, and keeps it for life.
//
// isCompleted mirrors status == Completed and is persisted separately for
// readers that only look at the flag.
type Truckload struct {
	id            kernel.UUID
	driver        string
	startDate     time.Time
	endDate       time.Time
	trailerNumber string
	bol           *bol.Number
	status        Status

	isConstructed bool
}

// NewDraftTruckload creates a truckload in Draft without a bill of lading.
//
// Example:
//
//	tl, err := truckload.NewDraftTruckload(kernel.NewUUID(), "R. Alvarez", start, end, "TR-12")
func NewDraftTruckload(id kernel.UUID, driver string, startDate, endDate time.Time, trailerNumber string) (*Truckload, error) {
	tl := &Truckload{
		status:        Draft,
		trailerNumber: strings.TrimSpace(trailerNumber),
		isConstructed: true,
	}

	if err := errors.Join(
		tl.setID(id),
		tl.setDriver(driver),
		tl.setDates(startDate, endDate),
	); err != nil {
		return nil, err
	}

	return tl, nil
}

// RestoreTruckload rebuilds a persisted truckload. billOfLading may be nil.
func RestoreTruckload(
	id kernel.UUID,
	driver string,
	startDate, endDate time.Time,
	trailerNumber string,
	billOfLading *bol.Number,
	status Status,
) (*Truckload, error) {
	tl, err := NewDraftTruckload(id, driver, startDate, endDate, trailerNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if billOfLading != nil {
		if err = billOfLading.Validate(); err != nil {
			return nil, err
		}
	}

	tl.status = status
	tl.bol = billOfLading
	return tl, nil
}

func (t *Truckload) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckloadIsNotConstructed
	}
	return nil
}

func (t *Truckload) ID() kernel.UUID {
	return t.id
}

func (t *Truckload) Driver() string {
	return t.driver
}

func (t *Truckload) StartDate() time.Time {
	return t.startDate
}

func (t *Truckload) EndDate() time.Time {
	return t.endDate
}

func (t *Truckload) TrailerNumber() string {
	return t.trailerNumber
}

// BillOfLading returns nil until the truckload is promoted.
func (t *Truckload) BillOfLading() *bol.Number {
	return t.bol
}

func (t *Truckload) Status() Status {
	return t.status
}

func (t *Truckload) IsCompleted() bool {
	return t.status == Completed
}

// Promote moves a Draft truckload to Active. Any other status is an InvalidState.
func (t *Truckload) Promote() error {
	next, err := t.status.transition(Draft, Active)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

// NeedsBillOfLading reports whether no number has been assigned yet.
func (t *Truckload) NeedsBillOfLading() bool {
	return t.bol == nil
}

// AssignBillOfLading sets the number once. Reassignment is an InvalidState.
func (t *Truckload) AssignBillOfLading(n bol.Number) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if t.bol != nil {
		return errs.NewInvalidStateError("bill of lading", t.bol.String(), "unassigned")
	}
	t.bol = &n
	return nil
}

// Complete moves an Active truckload to Completed.
func (t *Truckload) Complete() error {
	next, err := t.status.transition(Active, Completed)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

// Uncomplete reopens a Completed truckload back to Active.
func (t *Truckload) Uncomplete() error {
	next, err := t.status.transition(Completed, Active)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

func (t *Truckload) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truckload) setDriver(driver string) error {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		return errs.NewValueIsRequiredError("driver")
	}
	t.driver = driver
	return nil
}

func (t *Truckload) setDates(start, end time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause("end date", fmt.Errorf("%s is before start date %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly)))
	}
	t.startDate = start
	t.endDate = end
	return nil
}
