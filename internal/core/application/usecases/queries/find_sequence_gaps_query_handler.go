package queries

import (
	"context"

	"dispatch/internal/core/domain/services"

	"github.com/jmoiron/sqlx"
)

type FindSequenceGapsQueryHandler struct {
	db        *sqlx.DB
	sequencer services.StopSequencer
}

func NewFindSequenceGapsQueryHandler(db *sqlx.DB) FindSequenceGapsQueryHandler {
	return FindSequenceGapsQueryHandler{db: db, sequencer: services.NewStopSequencer()}
}

func (h FindSequenceGapsQueryHandler) Handle(ctx context.Context, query FindSequenceGapsQuery) ([]SequenceGap, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		TruckloadID    string `db:"truckload_id"`
		SequenceNumber int    `db:"sequence_number"`
	}
	err := h.db.SelectContext(ctx, &rows, `
		SELECT truckload_id, sequence_number
		FROM truckload_order_assignments
		ORDER BY truckload_id, sequence_number
	`)
	if err != nil {
		return nil, err
	}

	gaps := make([]SequenceGap, 0)
	flush := func(truckloadID string, seqs []int) {
		if len(seqs) > 0 && !h.sequencer.IsDense(seqs) {
			gaps = append(gaps, SequenceGap{TruckloadID: truckloadID, SequenceNumbers: seqs})
		}
	}

	var current string
	var seqs []int
	for _, row := range rows {
		if row.TruckloadID != current {
			flush(current, seqs)
			current, seqs = row.TruckloadID, nil
		}
		seqs = append(seqs, row.SequenceNumber)
	}
	flush(current, seqs)

	return gaps, nil
}
