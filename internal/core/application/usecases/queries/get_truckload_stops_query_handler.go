package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

type GetTruckloadStopsQueryHandler struct {
	db *sqlx.DB
}

func NewGetTruckloadStopsQueryHandler(db *sqlx.DB) GetTruckloadStopsQueryHandler {
	return GetTruckloadStopsQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when the truckload does not exist and
// an empty stop list when it has none.
func (h GetTruckloadStopsQueryHandler) Handle(
	ctx context.Context,
	query GetTruckloadStopsQuery,
) (GetTruckloadStopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTruckloadStopsQueryResponse{}, err
	}

	id := query.TruckloadID().String()

	var res GetTruckloadStopsQueryResponse
	err := h.db.GetContext(ctx, &res, h.db.Rebind(`
		SELECT id, status, bill_of_lading_number
		FROM truckloads
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTruckloadStopsQueryResponse{}, errs.NewObjectNotFoundError("truckload", id)
	}
	if err != nil {
		return GetTruckloadStopsQueryResponse{}, err
	}

	res.Stops = make([]Stop, 0)
	err = h.db.SelectContext(ctx, &res.Stops, h.db.Rebind(`
		SELECT
			a.id,
			a.order_id,
			a.assignment_type,
			a.sequence_number,
			a.exclude_from_load_value,
			a.is_completed,
			o.pickup_customer,
			o.delivery_customer,
			o.status AS order_status,
			o.is_transfer_order
		FROM truckload_order_assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.truckload_id = ?
		ORDER BY a.sequence_number, a.id
	`), id)
	if err != nil {
		return GetTruckloadStopsQueryResponse{}, err
	}

	return res, nil
}
