package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moviematch/core/internal/config"
	infra_pg_init "github.com/moviematch/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/moviematch/core/internal/infra/postgres/movie"
	"github.com/moviematch/core/internal/infra/tmdb"
	"github.com/moviematch/core/internal/logging"
	usecase_catalog "github.com/moviematch/core/internal/usecase/catalog"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to env file",
	}
}

func load(cmd *cli.Command) (*config.Config, *slog.Logger) {
	cfg := config.LoadFrom(cmd.String("config"))
	logger := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, logger
}

func importAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger := load(cmd)

	pages := cfg.TMDB.Pages
	if cmd.IsSet("pages") {
		pages = int(cmd.Int("pages"))
	}

	client, err := tmdb.New(cfg.TMDB, tmdb.WithLogger(logger))
	if err != nil {
		return err
	}

	if cfg.Postgres.Migrate {
		if err := infra_pg_init.Migrate(cfg.Postgres, logger); err != nil {
			return err
		}
	}

	db, err := infra_pg_init.Connect(cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	uc := usecase_catalog.New(client, infra_postgres_movie.New(db), usecase_catalog.WithLogger(logger))

	report, err := uc.Import(ctx, pages)
	logger.Info("import finished",
		slog.Int("genres", report.Genres),
		slog.Int("pages", report.Pages),
		slog.Int("failed_pages", report.FailedPages),
		slog.Int("inserted", report.Inserted),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}

func platformsAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger := load(cmd)

	client, err := tmdb.New(cfg.TMDB, tmdb.WithLogger(logger))
	if err != nil {
		return err
	}

	db, err := infra_pg_init.Connect(cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	uc := usecase_catalog.New(client, infra_postgres_movie.New(db), usecase_catalog.WithLogger(logger))

	report, err := uc.BackfillPlatforms(ctx, int(cmd.Int("batch")))
	if err != nil {
		return fmt.Errorf("platform backfill failed after %d movies: %w", report.Checked, err)
	}
	return nil
}

func migrateAction(_ context.Context, cmd *cli.Command) error {
	cfg, logger := load(cmd)
	return infra_pg_init.Migrate(cfg.Postgres, logger)
}

func main() {
	app := &cli.Command{
		Name:  "seed",
		Usage: "Maintain the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Import genres and popular movies from TMDB",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "pages",
						Usage: "Number of popular pages to import (overrides TMDB_PAGES)",
					},
				},
				Action: importAction,
			},
			{
				Name:  "platforms",
				Usage: "Backfill the streaming platform of movies that have none",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "batch",
						Usage: "Movies fetched per database page",
						Value: usecase_catalog.DefaultPlatformBatch,
					},
				},
				Action: platformsAction,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: migrateAction,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logging.Logger().Error().Err(err).Msg("seed failed")
		stop()
		os.Exit(1)
	}
}
