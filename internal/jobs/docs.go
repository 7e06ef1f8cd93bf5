// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, batchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OutboxRelayJob runs every five seconds and hands pending outbox events to the broker.
// A failed run is logged; the undelivered events stay pending for the next run.
package jobs
