// Package jobs provides scheduled background tasks for the inventory system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderBacklogJob - Runs every minute to count pending purchase orders and
// pending export orders and log the backlog.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogQueryHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog job is purely observational; query failures are logged and the
// next tick retries.
package jobs
