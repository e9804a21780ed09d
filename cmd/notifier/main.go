package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/you-humble/techrepair/internal/app/notifier"
	"github.com/you-humble/techrepair/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := notifier.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create the notifier",
			logger.ErrorF(err),
		)
		return
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ TechRepair notifier error", logger.ErrorF(err))
	}
}
