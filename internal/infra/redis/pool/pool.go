package infra_redis_pool

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/moviematch/core/internal/model"
)

const (
	DefaultKey = "moviematch:candidate_pool"
	DefaultTTL = 10 * time.Minute

	fillChunk = 500
)

// Driver keeps the ids of feed-eligible movies in a redis set. The set
// expires after ttl, which bounds how stale a pool can get after an import.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Sample returns up to n distinct ids; an expired or missing pool yields none.
func (d *Driver) Sample(ctx context.Context, n int) ([]model.MovieID, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := d.client.WithContext(ctx).SRandMemberN(d.key, int64(n)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sample pool: %w", err)
	}

	return parseIDs(members), nil
}

// Fill replaces the pool atomically so readers never see a half-built set.
func (d *Driver) Fill(ctx context.Context, ids []model.MovieID) error {
	_, err := d.client.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Del(d.key)
		for _, chunk := range chunkMembers(ids, fillChunk) {
			pipe.SAdd(d.key, chunk...)
		}
		pipe.Expire(d.key, d.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to fill pool: %w", err)
	}
	return nil
}

func parseIDs(members []string) []model.MovieID {
	ids := make([]model.MovieID, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, model.MovieID(id))
	}
	return ids
}

func chunkMembers(ids []model.MovieID, size int) [][]any {
	var chunks [][]any
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunk := make([]any, 0, end-start)
		for _, id := range ids[start:end] {
			chunk = append(chunk, strconv.FormatInt(int64(id), 10))
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
