package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pawplan/pawplan/adapter/cli"
	"github.com/pawplan/pawplan/adapter/cli/custody"
	"github.com/pawplan/pawplan/internal/app"
	"github.com/pawplan/pawplan/pkg/config"
	"github.com/pawplan/pawplan/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		GenerateScheduleHandler:    container.GenerateScheduleHandler,
		ApplyUnavailabilityHandler: container.ApplyUnavailabilityHandler,
		RevertDateHandler:          container.RevertDateHandler,
		GetScheduleHandler:         container.GetScheduleHandler,
		GetPeriodsHandler:          container.GetPeriodsHandler,
		ValidateScheduleHandler:    container.ValidateScheduleHandler,
		PartyA:                     container.PartyA,
		PartyB:                     container.PartyB,
		PartyNames:                 container.PartyNames,
		RotationDays:               container.RotationDays,
		MaxConsecutiveDays:         container.MaxConsecutiveDays,
	})

	cli.AddCommand(custody.Cmd)
	cli.Execute()
}
