// Command feedbackhub serves the feedback board HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("feedbackhub: %v", err)
	}
}
