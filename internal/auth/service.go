package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "swimcoach-session||"
	tokensSetKey     = "swimcoach-session-ids"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type coachesRepo interface {
	Add(ctx context.Context, name, email, passwordHash string) (*Coach, error)
	Get(ctx context.Context, id int) (*Coach, error)
	GetByEmail(ctx context.Context, email string) (*Coach, error)
}

type Service struct {
	coaches     coachesRepo
	tokens      *Tokens
	redisClient *redis.Client
	tokenCache  *freecache.Cache

	// injectable for unit tests
	NewTokenID func() string
	Now        func() time.Time
}

func NewService(
	coaches coachesRepo,
	tokens *Tokens,
	redisClient *redis.Client,
	tokenCache *freecache.Cache,
) *Service {
	return &Service{
		coaches:     coaches,
		tokens:      tokens,
		redisClient: redisClient,
		tokenCache:  tokenCache,
		NewTokenID:  uuid.NewString,
		Now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	coach, err := s.coaches.Add(ctx, name, email, passwordHash)
	if err != nil {
		return nil, err
	}

	log.Debugf("new coach registered: %d", coach.ID)
	return s.startSession(ctx, coach)
}

func (s *Service) Login(ctx context.Context, email, password string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	coach, err := s.coaches.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, coach.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, coach)
}

func (s *Service) startSession(ctx context.Context, coach *Coach) (*Session, error) {
	tokenID := s.NewTokenID()
	token, expiresAt, err := s.tokens.Issue(coach.ID, tokenID, s.Now())
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + tokenID
	if err := s.redisClient.Set(ctx, sessionKey, coach.ID, s.tokens.TTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// add token id to list of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, tokenID).Err(); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      coach,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.Parse(token, s.Now())
	if err != nil {
		return err
	}

	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.tokenCache.Del([]byte(claims.ID))

	// remove token id from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, claims.ID).Err(); err != nil {
		return fmt.Errorf("unregister session: %w", err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *Service) Me(ctx context.Context, coachID int) (_ *Coach, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.me")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.coaches.Get(ctx, coachID)
}

// ScanAndClean drops ids of expired sessions from the sessions set.
// It returns the number of sessions still alive.
func (s *Service) ScanAndClean(ctx context.Context) (int, error) {
	tokenIDs, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("get sessions: %w", err)
	}

	if len(tokenIDs) == 0 {
		log.Debugln("auth service, scan and clean: no sessions")
		return 0, nil
	}

	var toRemove []any
	for _, tokenID := range tokenIDs {
		exists, err := s.redisClient.Exists(ctx, sessionKeyPrefix+tokenID).Result()
		if err != nil {
			log.Errorf("auth service, scan and clean session %s: %s", tokenID, err)
			continue
		}
		if exists == 0 {
			toRemove = append(toRemove, tokenID)
		}
	}

	if len(toRemove) > 0 {
		if err := s.redisClient.SRem(ctx, tokensSetKey, toRemove...).Err(); err != nil {
			return 0, fmt.Errorf("remove expired sessions: %w", err)
		}
		log.Infof("auth service, scan and clean: removed %d expired sessions", len(toRemove))
	}

	return len(tokenIDs) - len(toRemove), nil
}

func cacheCoachID(cache *freecache.Cache, tokenID string, coachID int, ttl time.Duration) {
	ttlSeconds := int(ttl.Seconds())
	if ttlSeconds <= 0 {
		return
	}
	if err := cache.Set([]byte(tokenID), []byte(strconv.Itoa(coachID)), ttlSeconds); err != nil {
		log.Warnf("cache session %s: %s", tokenID, err)
	}
}

func cachedCoachID(cache *freecache.Cache, tokenID string) (int, bool) {
	val, err := cache.Get([]byte(tokenID))
	if err != nil {
		return 0, false
	}
	coachID, err := strconv.Atoi(string(val))
	if err != nil {
		return 0, false
	}
	return coachID, true
}
