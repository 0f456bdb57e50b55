package jobs

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/logger"
	"dispatch/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// Lease keeps a job to one instance per tick when several processes share
// the database.
type Lease interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
}

// Options configures one scheduled audit.
type Options struct {
	// Spec is a six-field cron expression, seconds first.
	Spec     string
	Lease    Lease
	LeaseTTL time.Duration
	Timeout  time.Duration
	Metrics  *metrics.JobMetrics
	Logger   *logger.Logger
}

// runner owns the cron schedule and the bookkeeping around each audit pass.
type runner struct {
	name string
	opts Options
	cron *cron.Cron
	log  *logger.Logger
}

func newRunner(name string, opts Options) *runner {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &runner{
		name: name,
		opts: opts,
		cron: cron.New(cron.WithSeconds()),
		log:  opts.Logger.Component(name),
	}
}

func (r *runner) start(audit func(ctx context.Context) (int, error)) error {
	if r.opts.Spec == "" {
		return errors.New("cron spec is required")
	}
	if _, err := r.cron.AddFunc(r.opts.Spec, func() { r.tick(context.Background(), audit) }); err != nil {
		return err
	}

	r.cron.Start()
	r.log.Info(r.log.WithField(context.Background(), "spec", r.opts.Spec), "audit job started")
	return nil
}

// stop waits for a running pass to finish.
func (r *runner) stop() {
	<-r.cron.Stop().Done()
	r.log.Info(context.Background(), "audit job stopped")
}

func (r *runner) tick(ctx context.Context, audit func(ctx context.Context) (int, error)) {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	if r.opts.Lease != nil {
		held, err := r.opts.Lease.Acquire(ctx, r.name, r.opts.LeaseTTL)
		if err != nil {
			r.opts.Metrics.IncFailure(r.name)
			r.log.Error(ctx, "acquiring audit lease", err)
			return
		}
		if !held {
			r.opts.Metrics.IncSkipped(r.name)
			r.log.Debug(ctx, "audit lease held elsewhere")
			return
		}
	}

	started := time.Now()
	findings, err := audit(ctx)
	r.opts.Metrics.ObserveDuration(r.name, time.Since(started))
	if err != nil {
		r.opts.Metrics.IncFailure(r.name)
		r.log.Error(ctx, "audit failed", err)
		return
	}

	r.opts.Metrics.IncSuccess(r.name)
	r.opts.Metrics.SetFindings(r.name, findings)
	r.log.Info(r.log.WithField(ctx, "findings", findings), "audit finished")
}
