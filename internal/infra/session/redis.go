package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"cms/config"
	"cms/internal/core"
	"cms/internal/domain/entity"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "session:"
	sessionIDLen = 32
	pingTimeout  = 2 * time.Second
)

// redisClient is the subset of the go-redis client the stored session strategy uses.
type redisClient interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg == nil {
		return nil, errors.New("redis config is required for the redis session strategy")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	return client, nil
}

// redisSession stores session data under a random id; the client only holds the id.
type redisSession struct {
	client redisClient
	cookie CookieOptions
	logger *slog.Logger
}

// NewRedis is the constructor for the stored session strategy.
func NewRedis(client redisClient, cfg config.SessionConfig, logger *slog.Logger) (core.SessionStrategy, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if cfg.MaxAge <= 0 {
		return nil, errors.New("session max age must be positive")
	}

	return &redisSession{
		client: client,
		cookie: CookieOptionsFrom(cfg),
		logger: logger,
	}, nil
}

func (s *redisSession) key(sessionID string) string {
	return keyPrefix + sessionID
}

// Start stores data under a new session id and sets the id as the session cookie.
func (s *redisSession) Start(ctx context.Context, kctx *core.Context, data entity.SessionData) (string, error) {
	sessionID, err := generateID()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal session")
	}

	if err := s.client.Set(ctx, s.key(sessionID), payload, s.cookie.MaxAge).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}
	setCookie(kctx, sessionID, s.cookie)

	return sessionID, nil
}

// Get loads the stored session for the request's session id.
func (s *redisSession) Get(ctx context.Context, kctx *core.Context) (*entity.Session, error) {
	sessionID := tokenFromRequest(kctx, s.cookie.Name)
	if sessionID == "" {
		return nil, nil
	}

	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	var data entity.SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &entity.Session{ListKey: data.ListKey, ItemID: data.ItemID}, nil
}

// End deletes the stored session and clears the cookie.
func (s *redisSession) End(ctx context.Context, kctx *core.Context) error {
	if sessionID := tokenFromRequest(kctx, s.cookie.Name); sessionID != "" {
		if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}
	}
	clearCookie(kctx, s.cookie)

	return nil
}

// generateID returns a random, URL-safe session id with 256 bits of entropy.
func generateID() (string, error) {
	b := make([]byte, sessionIDLen)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
