package queries

import (
	"context"

	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/jmoiron/sqlx"
)

type PeekNextBOLQueryHandler struct {
	db        *sqlx.DB
	clock     ports.Clock
	sequencer services.BOLSequencer
}

func NewPeekNextBOLQueryHandler(db *sqlx.DB, clock ports.Clock) PeekNextBOLQueryHandler {
	return PeekNextBOLQueryHandler{db: db, clock: clock, sequencer: services.NewBOLSequencer()}
}

func (h PeekNextBOLQueryHandler) Handle(ctx context.Context, query PeekNextBOLQuery) (PeekNextBOLQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PeekNextBOLQueryResponse{}, err
	}

	now := h.clock.Now()
	issued := make([]string, 0)
	err := h.db.SelectContext(ctx, &issued, h.db.Rebind(`
		SELECT bill_of_lading_number
		FROM truckloads
		WHERE bill_of_lading_number LIKE ?
	`), bol.Prefix(now)+"%")
	if err != nil {
		return PeekNextBOLQueryResponse{}, err
	}

	next, err := h.sequencer.Next(now, issued)
	if err != nil {
		return PeekNextBOLQueryResponse{}, err
	}

	return PeekNextBOLQueryResponse{BillOfLading: next.String()}, nil
}
