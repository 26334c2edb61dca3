package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/authsvc/domain"
	"github.com/you/authsvc/internal/mocks"
)

func performWithAuth(t *testing.T, mw *AuthMW, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	mw.WithJWT()(c)
	return w, c
}

func TestAuthMW_ValidToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good-token" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{
			UserID: 7,
			Email:  "jane@ex.com",
			Extra:  map[string]string{"role": "user"},
		}, nil
	}
	mw := NewAuthMW(tokenSvc)

	w, c := performWithAuth(t, mw, "Bearer good-token")

	if w.Code != http.StatusOK {
		t.Fatalf("expected passthrough, got %d: %s", w.Code, w.Body.String())
	}
	if c.IsAborted() {
		t.Fatal("expected request to continue")
	}
	if got, _ := c.Get("user_id"); got != uint(7) {
		t.Errorf("expected user_id 7, got %v", got)
	}
	if got, _ := c.Get("user_email"); got != "jane@ex.com" {
		t.Errorf("expected user_email, got %v", got)
	}
	if got, _ := c.Get("user_role"); got != "user" {
		t.Errorf("expected user_role, got %v", got)
	}
}

func TestAuthMW_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		validateErr error
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic abc"},
		{name: "expired token", header: "Bearer stale", validateErr: domain.ErrTokenExpired},
		{name: "garbage token", header: "Bearer junk", validateErr: domain.ErrTokenMalformed},
		{name: "bad signature", header: "Bearer forged", validateErr: domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
				return nil, tt.validateErr
			}
			mw := NewAuthMW(tokenSvc)

			w, c := performWithAuth(t, mw, tt.header)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}
