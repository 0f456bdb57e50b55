package queries

import (
	"context"
	"database/sql"
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"

	"github.com/jmoiron/sqlx"
)

// defaultDriftPageSize bounds how many orders one audit round trip loads.
const defaultDriftPageSize = 500

// firstOrderCursor sorts before every order id.
const firstOrderCursor = "00000000-0000-0000-0000-000000000000"

type FindOrderDriftQueryHandler struct {
	db       *sqlx.DB
	pageSize int
}

func NewFindOrderDriftQueryHandler(db *sqlx.DB) FindOrderDriftQueryHandler {
	return FindOrderDriftQueryHandler{db: db, pageSize: defaultDriftPageSize}
}

// WithPageSize returns a copy reading n orders per page.
func (h FindOrderDriftQueryHandler) WithPageSize(n int) FindOrderDriftQueryHandler {
	if n > 0 {
		h.pageSize = n
	}
	return h
}

type orderLegRow struct {
	OrderID         string         `db:"id"`
	Status          string         `db:"status"`
	IsTransferOrder bool           `db:"is_transfer_order"`
	TruckloadID     sql.NullString `db:"truckload_id"`
	AssignmentType  sql.NullString `db:"assignment_type"`
}

// Handle walks orders in id order one page at a time. Only drifted orders are
// kept between pages.
func (h FindOrderDriftQueryHandler) Handle(ctx context.Context, query FindOrderDriftQuery) ([]OrderDrift, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drifts := make([]OrderDrift, 0)
	cursor := firstOrderCursor
	for {
		rows, err := h.page(ctx, cursor)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return drifts, nil
		}

		found, err := driftsIn(rows)
		if err != nil {
			return nil, err
		}
		drifts = append(drifts, found...)
		cursor = rows[len(rows)-1].OrderID
	}
}

// page returns the legs of the next pageSize orders after cursor. Orders
// without legs contribute a single row with null leg columns.
func (h FindOrderDriftQueryHandler) page(ctx context.Context, cursor string) ([]orderLegRow, error) {
	var rows []orderLegRow
	err := h.db.SelectContext(ctx, &rows, h.db.Rebind(`
		WITH page AS (
			SELECT id, status, is_transfer_order
			FROM orders
			WHERE id > ?
			ORDER BY id
			LIMIT ?
		)
		SELECT p.id, p.status, p.is_transfer_order, a.truckload_id, a.assignment_type
		FROM page p
		LEFT JOIN truckload_order_assignments a ON a.order_id = p.id
		ORDER BY p.id
	`), cursor, h.pageSize)
	return rows, err
}

func driftsIn(rows []orderLegRow) ([]OrderDrift, error) {
	var drifts []OrderDrift
	for i := 0; i < len(rows); {
		head := rows[i]
		var legs []assignment.Leg
		for ; i < len(rows) && rows[i].OrderID == head.OrderID; i++ {
			if !rows[i].AssignmentType.Valid {
				continue
			}
			t, err := assignment.ParseType(rows[i].AssignmentType.String)
			if err != nil {
				return nil, fmt.Errorf("order %s: %w", head.OrderID, err)
			}
			legs = append(legs, assignment.Leg{TruckloadID: rows[i].TruckloadID.String, Type: t})
		}

		status, err := order.ParseStatus(head.Status)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", head.OrderID, err)
		}

		d := OrderDrift{
			OrderID:          head.OrderID,
			Status:           head.Status,
			IsTransferOrder:  head.IsTransferOrder,
			ExpectedTransfer: order.IsTransfer(legs),
			StatusMatches:    order.StatusMatchesLegs(status, legs),
		}
		if d.IsTransferOrder != d.ExpectedTransfer || !d.StatusMatches {
			drifts = append(drifts, d)
		}
	}
	return drifts, nil
}
