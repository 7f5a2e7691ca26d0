package cron

import (
	"log"
	"time"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/repository"
)

// StartAutoAssignTask periodically distributes unassigned pending
// requests across active clerks. A sweep with no eligible clerks is
// logged and retried on the next tick.
func StartAutoAssignTask(triage *application.TriageService, interval time.Duration) {
	go func() {
		log.Printf("Starting background auto-assign task (interval: %s)", interval)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			count, err := triage.AutoAssignPending()
			if err != nil {
				log.Printf("Auto-assign sweep failed: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("Auto-assign sweep assigned %d requests", count)
			}
		}
	}()
}

// StartCleanupTask prunes old activity log entries once a day.
func StartCleanupTask(repos *repository.Repos, retentionDays int) {
	prune := func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		removed, err := repos.Activity.DeleteOlderThan(cutoff)
		if err != nil {
			log.Printf("Failed to cleanup old activity logs: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Activity log cleanup removed %d entries", removed)
		}
	}

	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", retentionDays)

		// Run immediately on startup
		prune()

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			prune()
		}
	}()
}
