package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/bulletin/internal/cli"
	"github.com/alexanderramin/bulletin/internal/config"
	"github.com/alexanderramin/bulletin/internal/pco"
	"github.com/alexanderramin/bulletin/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Quiet unless BULLETIN_LOG_CALLS or --verbose asks for call logs.
	level := new(slog.LevelVar)
	level.Set(cli.QuietLevel)
	if cfg.LogCalls {
		level.Set(slog.LevelInfo)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())

	// Wire the Planning Center client and pipeline
	client := pco.NewClient(cfg.PlanningCenter, pco.NewLogObserver(logger))
	observer := service.NewLogUseCaseObserver(logger)

	plans := service.NewPlanResolver(client, observer)
	team := service.NewTeamResolver(client, observer)
	items := service.NewItemRenderer(client, observer)

	app := &cli.App{
		Plans:          plans,
		Team:           team,
		Items:          items,
		Bulletin:       service.NewBulletinService(plans, team, items, observer),
		NameTitles:     cfg.NameTitles,
		CredentialsErr: cfg.Validate(),
		LogLevel:       level,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
