package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/config"
	"github.com/aduportal/portal-go/internal/config/db"
	"github.com/aduportal/portal-go/internal/repository"
)

// Standalone triage sweeper for deployments that run the API with the
// in-process task disabled.
func main() {
	config.LoadConfig()
	db.Init()

	repos := repository.NewRepositories(db.DB)
	triage := application.NewTriageService(repos)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()
	}()

	ticker := time.NewTicker(config.AutoAssignInterval)
	defer ticker.Stop()

	log.Printf("Starting auto-assign worker (interval: %s)", config.AutoAssignInterval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := triage.AutoAssignPending()
			if err != nil {
				log.Printf("Auto-assign sweep failed: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("Assigned %d requests", count)
			}
		}
	}
}
