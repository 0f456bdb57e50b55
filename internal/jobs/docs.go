// Package jobs provides scheduled consistency audits for dispatch.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution specs.
// They read through the query handlers, log what they find and export it as
// gauges. They never modify data.
//
// # Available Jobs
//
//  1. StopSequenceAuditJob - truckloads whose stop sequence numbers are not 1..N
//  2. OrderDriftAuditJob - orders whose stored status or transfer flag disagrees with their legs
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewStopSequenceAuditJob(gapsHandler, opts),
//		jobs.NewOrderDriftAuditJob(driftHandler, opts),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Leases
//
// With several instances running, pass a Lease (see the redis adapter) so
// only the instance that wins a tick runs the audit. Ticks lost to another
// instance count as skipped.
package jobs
