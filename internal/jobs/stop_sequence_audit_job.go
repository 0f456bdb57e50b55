package jobs

import (
	"context"

	"dispatch/internal/core/application/usecases/queries"
)

const StopSequenceAuditJobName = "stop-sequence-audit"

type sequenceGapFinder interface {
	Handle(ctx context.Context, query queries.FindSequenceGapsQuery) ([]queries.SequenceGap, error)
}

// StopSequenceAuditJob reports truckloads whose stops are not numbered 1..N.
// It never renumbers anything.
type StopSequenceAuditJob struct {
	finder sequenceGapFinder
	runner *runner
}

func NewStopSequenceAuditJob(finder sequenceGapFinder, opts Options) *StopSequenceAuditJob {
	return &StopSequenceAuditJob{finder: finder, runner: newRunner(StopSequenceAuditJobName, opts)}
}

func (j *StopSequenceAuditJob) Name() string { return StopSequenceAuditJobName }

func (j *StopSequenceAuditJob) Start() error { return j.runner.start(j.Run) }

func (j *StopSequenceAuditJob) Stop() { j.runner.stop() }

// Run performs one audit pass and returns the number of truckloads reported.
func (j *StopSequenceAuditJob) Run(ctx context.Context) (int, error) {
	gaps, err := j.finder.Handle(ctx, queries.NewFindSequenceGapsQuery())
	if err != nil {
		return 0, err
	}

	for _, gap := range gaps {
		j.runner.log.Warn(j.runner.log.WithFields(ctx, map[string]any{
			"truckload_id":     gap.TruckloadID,
			"sequence_numbers": gap.SequenceNumbers,
		}), "stop sequence is not dense")
	}
	return len(gaps), nil
}
