package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn         func(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error)
	signupFn        func(ctx context.Context, input ports.SignupInput) (string, *domain.User, error)
	logoutFn        func(ctx context.Context, token string) error
	currentUserFn   func(ctx context.Context, token string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.currentUserFn(ctx, token)
}

func (s *stubAuthService) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := s.currentUserFn(ctx, token)
	return err == nil
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
	return s.updateProfileFn(ctx, token, patch)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
			if email != "client@demo.com" || password != "demo123" || role != domain.RoleClient {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return "token123", &domain.User{ID: "1", Name: "John Client", Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"client@demo.com","password":"demo123","role":"client"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "John Client" || user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, present := user["passwordHash"]; present {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"client@demo.com","password":"wrong","role":"client"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := map[string]string{
		"malformed json": `{`,
		"missing role":   `{"email":"client@demo.com","password":"demo123"}`,
		"bad role":       `{"email":"client@demo.com","password":"demo123","role":"admin"}`,
		"bad email":      `{"email":"not-an-email","password":"demo123","role":"client"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login", body)

			err := handler.Login(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
			if input.Name != "Alice Attorney" || input.Role != domain.RoleLawyer || input.Specialty != "Family Law" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token456", &domain.User{ID: "3", Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"name":"Alice Attorney","email":"alice@example.com","password":"secret1","role":"lawyer","specialty":"Family Law"}`)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Signup_UserExists(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"name":"Bob","email":"client@demo.com","password":"secret1","role":"client"}`)

	err := handler.Signup(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"name":"Bob","email":"bob@example.com","password":"short","role":"client"}`)

	err := handler.Signup(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token == "token123" {
				return &domain.User{ID: "1"}, nil
			}
			return nil, domain.ErrSessionNotFound
		},
	}
	handler := NewAuthHandler(stub)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"live session", "Bearer token123", true},
		{"revoked session", "Bearer stale", false},
		{"no header", "", false},
		{"wrong scheme", "Token token123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodGet, "/v1/auth/session", "")
			if tt.header != "" {
				c.Request().Header.Set("Authorization", tt.header)
			}

			if err := handler.Session(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp map[string]bool
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["authenticated"] != tt.want {
				t.Fatalf("expected authenticated=%v, got %v", tt.want, resp["authenticated"])
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	revoked := ""
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/logout", "")
	c.Set("token", "token123")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "token123" {
		t.Fatalf("expected session token123 revoked, got %q", revoked)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.User{ID: "1", Name: "John Client", Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/auth/me", "")
	c.Set("token", "token123")

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.ID != "1" || user.Name != "John Client" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Me_MissingToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/auth/me", "")

	err := handler.Me(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	stub := &stubAuthService{
		updateProfileFn: func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
			if patch.Phone == nil || *patch.Phone != "+1 (555) 111-2222" {
				t.Fatalf("expected phone in patch, got %+v", patch)
			}
			if patch.Name != nil {
				t.Fatalf("absent fields must stay nil, got name %q", *patch.Name)
			}
			return &domain.User{ID: "1", Name: "John Client", Phone: *patch.Phone, Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/auth/me",
		`{"phone":"+1 (555) 111-2222"}`)
	c.Set("token", "token123")

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
