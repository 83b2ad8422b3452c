package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	miniredisOnce   sync.Once
	miniredisClient *redis.Client
)

// NewRedis returns a go-redis client backed by an in-process miniredis
// server. The server is started once and shared by every scenario; state is
// wiped between scenarios with ClearRedis.
func NewRedis() *redis.Client {
	miniredisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		miniredisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})

	return miniredisClient
}

// ClearRedis flushes every key, including cached monthly summaries.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
