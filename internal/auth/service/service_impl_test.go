package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/sica/internal/auth/domain"
	"github.com/smallbiznis/sica/internal/auth/password"
	"github.com/smallbiznis/sica/internal/auth/repository"
	"github.com/smallbiznis/sica/internal/clock"
	"github.com/smallbiznis/sica/internal/config"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	userrepository "github.com/smallbiznis/sica/internal/user/repository"
	"github.com/smallbiznis/sica/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, fc *clock.FakeClock) (authdomain.Service, userdomain.Repository) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.Token{}, &userdomain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	users := userrepository.New(dbConn)
	svc := New(Params{
		Cfg:   config.Config{TokenTTL: 12 * time.Hour},
		Log:   zap.NewNop(),
		Clock: fc,
		GenID: node,
		Repo:  repository.New(dbConn),
		Users: users,
	})
	return svc, users
}

func seedUser(t *testing.T, users userdomain.Repository, email, plaintext string) {
	t.Helper()

	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	node, _ := snowflake.NewNode(2)
	err = users.Create(context.Background(), &userdomain.User{
		ID:           node.Generate(),
		Name:         "Alice",
		Lastname:     "Smith",
		Email:        email,
		PasswordHash: hash,
		Role:         "seller",
		RecordStatus: userdomain.RecordStatusActive,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected a raw token")
	}
	if result.UserEmail != "alice@example.com" {
		t.Fatalf("expected user email, got %s", result.UserEmail)
	}
	want := fc.Now().Add(12 * time.Hour)
	if !result.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, result.ExpiresAt)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, _ := newTestService(t, fc)

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginInactiveUserRejected(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)

	hash, err := password.Hash("correct-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	node, _ := snowflake.NewNode(3)
	err = users.Create(context.Background(), &userdomain.User{
		ID:           node.Generate(),
		Name:         "Bob",
		Lastname:     "Jones",
		Email:        "bob@example.com",
		PasswordHash: hash,
		Role:         "seller",
		RecordStatus: userdomain.RecordStatusInactive,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err = svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "bob@example.com",
		Password: "correct-password",
	})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	token, err := svc.Authenticate(context.Background(), result.RawToken)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if token.UserEmail != "alice@example.com" {
		t.Fatalf("expected user email, got %s", token.UserEmail)
	}
}

func TestAuthenticateExpiredTokenDeleted(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	fc.Advance(12*time.Hour + time.Second)

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	if !errors.Is(err, authdomain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// the expired record is removed on first access
	_, err = svc.Authenticate(context.Background(), result.RawToken)
	if !errors.Is(err, authdomain.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	if !errors.Is(err, authdomain.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	// revoking twice is not idempotent
	if err := svc.Logout(context.Background(), result.RawToken); !errors.Is(err, authdomain.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestLoginTokensAreUnique(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc, users := newTestService(t, fc)
	seedUser(t, users, "alice@example.com", "correct-password")

	first, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	second, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if first.RawToken == second.RawToken {
		t.Fatal("expected distinct tokens per login")
	}

	// both sessions stay valid
	if _, err := svc.Authenticate(context.Background(), first.RawToken); err != nil {
		t.Fatalf("first session invalid: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), second.RawToken); err != nil {
		t.Fatalf("second session invalid: %v", err)
	}
}
