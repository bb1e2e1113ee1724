package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bit-milind42/Blog-Editor/internal/api/middleware"
	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type recordingRevoker struct {
	revoked map[string]time.Time
}

func (r *recordingRevoker) Revoke(_ context.Context, token string, until time.Time) error {
	if r.revoked == nil {
		r.revoked = make(map[string]time.Time)
	}
	r.revoked[token] = until
	return nil
}

func (r *recordingRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := r.revoked[token]
	return ok, nil
}

func authContext(body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s/%s", username, password)
			}
			return &domain.User{ID: "6543210fedcba98765432100", Username: username}, nil
		},
	}
	handler := NewAuthHandler(stub, nil)

	rec, c := authContext(`{"username":"alice","password":"secret"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != "6543210fedcba98765432100" {
		t.Errorf("userId = %q", resp.UserID)
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, nil)

	_, c := authContext(`{"username":"alice"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, nil)

	_, c := authContext(`{"username":"bob","password":"pw"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{ID: "6543210fedcba98765432100", Username: username}, nil
		},
	}
	handler := NewAuthHandler(stub, nil)

	rec, c := authContext(`{"username":"carol","password":"pw"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.UserID != "6543210fedcba98765432100" {
		t.Errorf("userId = %q", resp.UserID)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, nil)

	_, c := authContext(`{"username":"carol","password":"wrong"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	revoker := &recordingRevoker{}
	handler := NewAuthHandler(&stubAuthService{}, revoker)

	expiry := time.Now().Add(20 * time.Hour).UTC()
	rec, c := authContext(``)
	c.Set(middleware.CtxToken, "the-raw-token")
	c.Set(middleware.CtxTokenExpires, expiry)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	until, ok := revoker.revoked["the-raw-token"]
	if !ok {
		t.Fatal("token not revoked")
	}
	if !until.Equal(expiry) {
		t.Errorf("revoked until %v, want token expiry %v", until, expiry)
	}
}

func TestAuthHandler_Logout_NoRevokerStillSucceeds(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, nil)

	rec, c := authContext(``)
	c.Set(middleware.CtxToken, "the-raw-token")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
