package queries

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const manualDeduction = "manual"

type ListSplitLoadDeductionsQueryHandler struct {
	db *sqlx.DB
}

func NewListSplitLoadDeductionsQueryHandler(db *sqlx.DB) ListSplitLoadDeductionsQueryHandler {
	return ListSplitLoadDeductionsQueryHandler{db: db}
}

func (h ListSplitLoadDeductionsQueryHandler) Handle(
	ctx context.Context,
	query ListSplitLoadDeductionsQuery,
) ([]SplitLoadDeduction, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]SplitLoadDeduction, 0)
	err := h.db.SelectContext(ctx, &rows, h.db.Rebind(`
		SELECT id, order_id, amount, applies_to, is_addition, COALESCE(comment, '') AS comment
		FROM freight_deductions
		WHERE truckload_id = ?
		  AND deduction_type = ?
		  AND is_split_load = ?
		  AND order_id IS NOT NULL
		ORDER BY id
	`), query.TruckloadID().String(), manualDeduction, true)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
