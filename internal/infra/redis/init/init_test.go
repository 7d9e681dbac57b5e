package infra_redis_init

import (
	"context"
	"testing"

	"github.com/moviematch/core/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAddr(t *testing.T) {
	assert.Equal(t, "localhost:6379", Addr(config.RedisCache{Host: "localhost", Port: "6379"}))
	assert.Equal(t, "[::1]:6380", Addr(config.RedisCache{Host: "::1", Port: "6380"}))
}

func TestConnectFailsWithoutServer(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisCache{Host: "127.0.0.1", Port: "1"})

	assert.Error(t, err)
	assert.Nil(t, client)
}
