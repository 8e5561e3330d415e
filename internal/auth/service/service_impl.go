package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/auth/domain"
	"github.com/smallbiznis/sica/internal/auth/password"
	"github.com/smallbiznis/sica/internal/clock"
	"github.com/smallbiznis/sica/internal/config"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const tokenBytes = 32

type Params struct {
	fx.In

	Cfg   config.Config
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.TokenRepository
	Users userdomain.Repository
}

type Service struct {
	log    *zap.Logger
	clock  clock.Clock
	genID  *snowflake.Node
	tokens domain.TokenRepository
	users  userdomain.Repository
	cfg    config.Config
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("auth.service"),
		clock:  p.Clock,
		genID:  p.GenID,
		tokens: p.Repo,
		users:  p.Users,
		cfg:    p.Cfg,
	}
}

// Login verifies credentials and issues a fresh session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.RecordStatus != userdomain.RecordStatusActive {
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	token := &domain.Token{
		ID:        s.genID.Generate(),
		TokenHash: hashToken(rawToken),
		UserEmail: user.Email,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
		CreatedAt: now,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}

	s.log.Info("session issued", zap.String("user", user.Email))

	return &domain.LoginResult{
		RawToken:  rawToken,
		UserEmail: user.Email,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// Logout revokes the session. Revoking twice reports ErrTokenNotFound.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrTokenNotFound
	}
	return s.tokens.DeleteByHash(ctx, hashToken(token))
}

// Authenticate resolves the session for a raw token. An expired record
// is removed on first access, so later calls see ErrTokenNotFound.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Token, error) {
	raw := strings.TrimSpace(rawToken)
	if raw == "" {
		return nil, domain.ErrTokenNotFound
	}

	token, err := s.tokens.FindByHash(ctx, hashToken(raw))
	if err != nil {
		return nil, err
	}

	if !token.ExpiresAt.After(s.clock.Now()) {
		if err := s.tokens.DeleteByHash(ctx, token.TokenHash); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
			return nil, err
		}
		return nil, domain.ErrTokenExpired
	}

	return token, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
