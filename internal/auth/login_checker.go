package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

// LoginChecker verifies bearer tokens against the redis session store,
// with a short lived in-process cache in front of redis.
type LoginChecker struct {
	tokens      *Tokens
	redisClient *redis.Client
	tokenCache  *freecache.Cache
	cacheTTL    time.Duration

	Now func() time.Time
}

func NewLoginChecker(
	tokens *Tokens,
	redisClient *redis.Client,
	tokenCache *freecache.Cache,
	cacheTTL time.Duration,
) *LoginChecker {
	return &LoginChecker{
		tokens:      tokens,
		redisClient: redisClient,
		tokenCache:  tokenCache,
		cacheTTL:    cacheTTL,
		Now:         time.Now,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (int, bool, error) {
	claims, err := c.tokens.Parse(token, c.Now())
	if err != nil {
		return 0, false, nil
	}

	if coachID, ok := cachedCoachID(c.tokenCache, claims.ID); ok && coachID == claims.CoachID {
		return coachID, true, nil
	}

	coachID, err := c.redisClient.Get(ctx, sessionKeyPrefix+claims.ID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get session: %w", err)
	}

	if coachID != claims.CoachID {
		return 0, false, nil
	}

	cacheCoachID(c.tokenCache, claims.ID, coachID, c.cacheTTL)
	return coachID, true, nil
}
