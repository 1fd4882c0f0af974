package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/SscSPs/buylog/internal/cli"
	"github.com/SscSPs/buylog/internal/core/services"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/platform/config"
	"github.com/SscSPs/buylog/internal/repositories/database/pgsql"
	"github.com/SscSPs/buylog/pkg/database"
	"github.com/google/subcommands"
)

var (
	plain   = flag.Bool("plain", false, "print raw markdown instead of styled output")
	verbose = flag.Bool("v", false, "debug logging")
	migrate = flag.Bool("migrate", true, "apply pending database migrations before running a command")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	app := &cli.App{Out: os.Stdout}
	cli.Register(commander, app)

	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	app.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(app.Logger)
	app.Plain = *plain
	app.Open = openServices(app.Logger)

	os.Exit(int(commander.Execute(context.Background())))
}

// openServices connects to the database named by the configuration and builds the service container.
func openServices(logger *slog.Logger) cli.OpenFunc {
	return func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, err
		}

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
		if err != nil {
			return nil, nil, err
		}
		if *migrate {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}

		container := services.NewServiceContainer(cfg.Pricing(), pgsql.NewRepositoryProvider(pool))
		return container, func() { database.ClosePgxPool(pool) }, nil
	}
}
