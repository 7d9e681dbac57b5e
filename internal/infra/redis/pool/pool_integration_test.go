//go:build integration

package infra_redis_pool

import (
	"context"
	"testing"
	"time"

	"github.com/moviematch/core/internal/model"
	"github.com/moviematch/core/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolFillAndSample(t *testing.T) {
	client := testinfra.StartRedis(t)
	ctx := context.Background()
	d := New(client, "test:pool", time.Minute)

	empty, err := d.Sample(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, d.Fill(ctx, []model.MovieID{1, 2, 3, 4}))

	sample, err := d.Sample(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.MovieID{1, 2, 3, 4}, sample)

	require.NoError(t, d.Fill(ctx, []model.MovieID{9}))

	sample, err = d.Sample(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []model.MovieID{9}, sample)

	ttl, err := client.TTL("test:pool").Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
