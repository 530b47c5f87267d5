package auth

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	mutex       sync.Mutex
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (as *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	as.mutex.Lock()
	defer as.mutex.Unlock()

	createdAt, err := sessionCreatedAt(ctx, as.redisClient, token)
	if err != nil {
		return false, err
	}

	return time.Since(createdAt) <= as.ttl, nil
}
