package infra_redis_init

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-redis/redis"
	"github.com/moviematch/core/internal/config"
	"github.com/moviematch/core/internal/logging"
)

const connectTimeout = 5 * time.Second

func Addr(cfg config.RedisCache) string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

// Connect returns a client only once the server answers a ping.
func Connect(ctx context.Context, cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        Addr(cfg),
		Password:    cfg.Password,
		DialTimeout: connectTimeout,
	})

	if err := client.WithContext(ctx).Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", Addr(cfg), err)
	}

	return client, nil
}

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := Connect(ctx, cfg)
	if err != nil {
		logging.Logger().Fatal().Err(err).Str("addr", Addr(cfg)).Msg("redis unavailable")
	}

	return client
}
