package session

import (
	"context"
	"log/slog"
	"time"

	"cms/config"
	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"
	"cms/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const minSecretLength = 32

// sessionClaims carries the session data inside the signed token.
type sessionClaims struct {
	ListKey string `json:"listKey"`
	ItemID  string `json:"itemId"`
	jwt.RegisteredClaims
}

// statelessSession keeps the whole session in a signed token held by the client.
type statelessSession struct {
	secret []byte
	cookie CookieOptions
	logger *slog.Logger
}

// NewStateless is the constructor for the signed cookie session strategy.
func NewStateless(cfg config.SessionConfig, logger *slog.Logger) (core.SessionStrategy, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, errors.Errorf("session secret must be at least %d characters long", minSecretLength)
	}
	if cfg.MaxAge <= 0 {
		return nil, errors.New("session max age must be positive")
	}

	return &statelessSession{
		secret: []byte(cfg.Secret),
		cookie: CookieOptionsFrom(cfg),
		logger: logger,
	}, nil
}

// Start signs data into a token and sets it as the session cookie.
func (s *statelessSession) Start(_ context.Context, kctx *core.Context, data entity.SessionData) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		ListKey: data.ListKey,
		ItemID:  data.ItemID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   data.ItemID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cookie.MaxAge)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}
	setCookie(kctx, token, s.cookie)

	return token, nil
}

// Get decodes the request's token. A missing, expired or tampered token is no session.
func (s *statelessSession) Get(ctx context.Context, kctx *core.Context) (*entity.Session, error) {
	raw := tokenFromRequest(kctx, s.cookie.Name)
	if raw == "" {
		return nil, nil
	}

	claims := new(sessionClaims)
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "Ignoring invalid session token",
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &entity.Session{ListKey: claims.ListKey, ItemID: claims.ItemID}, nil
}

// End clears the session cookie.
func (s *statelessSession) End(_ context.Context, kctx *core.Context) error {
	clearCookie(kctx, s.cookie)

	return nil
}
