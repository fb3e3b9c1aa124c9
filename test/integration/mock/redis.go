package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis starts an embedded redis once and returns a client bound to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			panic("failed to start embedded redis: " + err.Error())
		}
		redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	})
	return redisClient
}

// ClearRedis flushes every key so the next scenario starts without a session.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
