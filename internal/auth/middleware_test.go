package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	var seen *auth.UserClaims
	protected := auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing: %v", err)
		}
		seen = claims
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := auth.GenerateJWT(testIdentity, auth.TokenTTL)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d", rec.Code)
		}
		if seen == nil || seen.UserID != testIdentity.UserID {
			t.Errorf("claims not propagated: %+v", seen)
		}
	})
}

func TestLogout(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.NewHandler().Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
