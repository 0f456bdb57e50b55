package jobs

import (
	"context"

	"dispatch/internal/core/application/usecases/queries"
)

const OrderDriftAuditJobName = "order-drift-audit"

type orderDriftFinder interface {
	Handle(ctx context.Context, query queries.FindOrderDriftQuery) ([]queries.OrderDrift, error)
}

// OrderDriftAuditJob reports orders whose stored status or transfer flag
// disagrees with their legs.
type OrderDriftAuditJob struct {
	finder orderDriftFinder
	runner *runner
}

func NewOrderDriftAuditJob(finder orderDriftFinder, opts Options) *OrderDriftAuditJob {
	return &OrderDriftAuditJob{finder: finder, runner: newRunner(OrderDriftAuditJobName, opts)}
}

func (j *OrderDriftAuditJob) Name() string { return OrderDriftAuditJobName }

func (j *OrderDriftAuditJob) Start() error { return j.runner.start(j.Run) }

func (j *OrderDriftAuditJob) Stop() { j.runner.stop() }

func (j *OrderDriftAuditJob) Run(ctx context.Context) (int, error) {
	drifts, err := j.finder.Handle(ctx, queries.NewFindOrderDriftQuery())
	if err != nil {
		return 0, err
	}

	for _, d := range drifts {
		j.runner.log.Warn(j.runner.log.WithFields(ctx, map[string]any{
			"order_id":          d.OrderID,
			"status":            d.Status,
			"is_transfer_order": d.IsTransferOrder,
			"expected_transfer": d.ExpectedTransfer,
			"status_matches":    d.StatusMatches,
		}), "order projection drifted from its legs")
	}
	return len(drifts), nil
}
