package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"
	"github.com/moviematch/core/internal/config"
	http_health "github.com/moviematch/core/internal/delivery/http/health"
	http_init "github.com/moviematch/core/internal/delivery/http/init"
	http_interaction "github.com/moviematch/core/internal/delivery/http/interaction"
	http_metrics "github.com/moviematch/core/internal/delivery/http/metrics"
	http_access_middleware "github.com/moviematch/core/internal/delivery/http/middleware/access"
	http_trace_middleware "github.com/moviematch/core/internal/delivery/http/middleware/trace"
	http_viewer_middleware "github.com/moviematch/core/internal/delivery/http/middleware/viewer"
	http_movie "github.com/moviematch/core/internal/delivery/http/movie"
	infra_pg_init "github.com/moviematch/core/internal/infra/postgres/init"
	infra_postgres_interaction "github.com/moviematch/core/internal/infra/postgres/interaction"
	infra_postgres_movie "github.com/moviematch/core/internal/infra/postgres/movie"
	infra_redis_init "github.com/moviematch/core/internal/infra/redis/init"
	infra_redis_pool "github.com/moviematch/core/internal/infra/redis/pool"
	"github.com/moviematch/core/internal/logging"
	"github.com/moviematch/core/internal/model"
	usecase_feed "github.com/moviematch/core/internal/usecase/feed"
	usecase_interaction "github.com/moviematch/core/internal/usecase/interaction"
)

var ErrInvalidPair = errors.New("participant ids must differ")

func Go(cfg *config.Config) {
	logger := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pair := model.Pair{
		Self:    model.ViewerID(cfg.Participants.Self),
		Partner: model.ViewerID(cfg.Participants.Partner),
	}
	if pair.Self == pair.Partner {
		return ErrInvalidPair
	}

	if cfg.Postgres.Migrate {
		if err := infra_pg_init.Migrate(cfg.Postgres, logger); err != nil {
			return err
		}
	}

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	var redisConn *redis.Client
	if cfg.Redis.Enabled {
		redisConn = infra_redis_init.MustEstablishConn(cfg.Redis)
		defer redisConn.Close()
	}

	controllerPool := buildControllerPool(cfg, pair, pgConn, redisConn, logger)
	return controllerPool.RunAll(ctx)
}

// buildControllerPool wires repositories, usecases and controllers. A nil
// redisConn disables the candidate pool.
func buildControllerPool(
	cfg *config.Config,
	pair model.Pair,
	pgConn *sqlx.DB,
	redisConn *redis.Client,
	logger *slog.Logger,
) *http_init.ControllerPool {
	movieRepository := infra_postgres_movie.New(pgConn)
	interactionDriver := infra_postgres_interaction.New(pgConn)

	feedOpts := []usecase_feed.Option{
		usecase_feed.WithLogger(logger.With(slog.String("component", "feed"))),
	}
	healthOpts := []http_health.ControllerOption{
		http_health.WithLogger(logger),
		http_health.WithCheck("postgres", pgConn.PingContext),
	}

	if redisConn != nil {
		candidatePool := infra_redis_pool.New(redisConn, infra_redis_pool.DefaultKey, cfg.Redis.PoolTTL)
		feedOpts = append(feedOpts, usecase_feed.WithPool(candidatePool, cfg.Feed.Oversample))
		healthOpts = append(healthOpts, http_health.WithCheck("redis", func(ctx context.Context) error {
			return redisConn.WithContext(ctx).Ping().Err()
		}))
	}

	feedUC := usecase_feed.New(movieRepository, model.CandidateFilter{
		Limit:        cfg.Feed.Limit,
		MinVoteCount: cfg.Feed.MinVoteCount,
	}, feedOpts...)
	interactionUC := usecase_interaction.New(interactionDriver, pair,
		usecase_interaction.WithLogger(logger.With(slog.String("component", "interaction"))))

	controllerPool := http_init.NewControllerPool(cfg.HTTP,
		http_init.WithLogger(logger),
		http_init.WithMiddleware(
			http_trace_middleware.RequestID(),
			http_trace_middleware.AccessLog(logger),
			http_trace_middleware.Metrics(),
		),
		http_init.WithAPIMiddleware(
			http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode),
			http_viewer_middleware.Resolve(pair),
		),
	)
	controllerPool.Add(http_movie.New(feedUC, pair.Self, http_movie.WithLogger(logger)))
	controllerPool.Add(http_interaction.New(interactionUC, pair.Self, http_interaction.WithLogger(logger)))
	controllerPool.AddRoot(http_health.New(healthOpts...))
	controllerPool.AddRoot(http_metrics.New())

	controllerPool.Register()
	return controllerPool
}
