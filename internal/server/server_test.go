package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/sica/internal/auth/domain"
	"github.com/smallbiznis/sica/internal/auth/session"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	loginErr  error
	authErr   error
	logoutErr error

	logoutCalls int
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &authdomain.LoginResult{
		RawToken:  "session-token",
		UserEmail: req.Email,
		ExpiresAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	_ = ctx
	_ = rawToken
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.Token, error) {
	_ = ctx
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &authdomain.Token{
		TokenHash: "hash-of-" + rawToken,
		UserEmail: "alice@example.com",
	}, nil
}

type fakeSaleService struct {
	createErr error
	receipt   *saledomain.Receipt
}

func (f *fakeSaleService) CreateSale(ctx context.Context, req saledomain.CreateRequest) (*saledomain.Receipt, error) {
	_ = ctx
	_ = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.receipt, nil
}

func (f *fakeSaleService) List(ctx context.Context) ([]saledomain.Response, error) {
	_ = ctx
	return []saledomain.Response{}, nil
}

func (f *fakeSaleService) ListByDateRange(ctx context.Context, lo, hi string) ([]saledomain.Response, error) {
	_, _, _ = ctx, lo, hi
	return nil, saledomain.ErrInvalidDate
}

func (f *fakeSaleService) ListByProduct(ctx context.Context, productID string) ([]saledomain.Response, error) {
	_, _ = ctx, productID
	return []saledomain.Response{}, nil
}

func (f *fakeSaleService) ListByUser(ctx context.Context, userID string) ([]saledomain.Response, error) {
	_, _ = ctx, userID
	return []saledomain.Response{}, nil
}

func newTestRouter(auth *fakeAuthService, sales *fakeSaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{
		log:      zap.NewNop(),
		sessions: session.NewManager(),
		auth:     auth,
		sales:    sales,
	}

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	srv.RegisterRoutes(r)
	return r
}

func decodeError(t *testing.T, body *bytes.Buffer) errorPayload {
	t.Helper()

	var resp errorResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return resp.Error
}

func TestLoginReturnsToken(t *testing.T) {
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{})

	body := bytes.NewBufferString(`{"email":"alice@example.com","password":"secret-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Token != "session-token" {
		t.Fatalf("expected token, got %q", resp.Token)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter(&fakeAuthService{loginErr: authdomain.ErrInvalidCredentials}, &fakeSaleService{})

	body := bytes.NewBufferString(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if payload := decodeError(t, w.Body); payload.Type != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %s", payload.Type)
	}
}

func TestLoginMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/sale", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if payload := decodeError(t, w.Body); payload.Type != "unauthorized" {
		t.Fatalf("expected unauthorized, got %s", payload.Type)
	}
}

func TestProtectedRouteExpiredToken(t *testing.T) {
	r := newTestRouter(&fakeAuthService{authErr: authdomain.ErrTokenExpired}, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/sale", nil)
	req.Header.Set(session.HeaderToken, "stale-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if payload := decodeError(t, w.Body); payload.Type != "token_expired" {
		t.Fatalf("expected token_expired, got %s", payload.Type)
	}
}

func TestProtectedRouteValidToken(t *testing.T) {
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/sale", nil)
	req.Header.Set(session.HeaderToken, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	auth := &fakeAuthService{}
	r := newTestRouter(auth, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(session.HeaderToken, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if auth.logoutCalls != 1 {
		t.Fatalf("expected one logout call, got %d", auth.logoutCalls)
	}
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	createErr := fmt.Errorf("%w: 1234", saledomain.ErrProductNotFound)
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{createErr: createErr})

	body := bytes.NewBufferString(`{"seller_id":"1","client_id":"2","products":[{"product_id":"1234","quantity":1}]}`)
	req := httptest.NewRequest(http.MethodPost, "/sale", body)
	req.Header.Set(session.HeaderToken, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	payload := decodeError(t, w.Body)
	if payload.Type != "not_found" {
		t.Fatalf("expected not_found, got %s", payload.Type)
	}
	if payload.Message != "product_not_found: 1234" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestSalesByDateBadBound(t *testing.T) {
	r := newTestRouter(&fakeAuthService{}, &fakeSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/sale/date?dateLo=bogus&dateHi=2026-01-01", nil)
	req.Header.Set(session.HeaderToken, "good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if payload := decodeError(t, w.Body); payload.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %s", payload.Type)
	}
}
