package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func protectedRouter(t *testing.T, roles ...string) *chi.Mux {
	t.Helper()
	log := zap.NewNop()

	r := chi.NewRouter()
	r.With(
		Auth(testSecret, log),
		RequireRoles(log, roles...),
	).Get("/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		email, _ := utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(email))
	})
	return r
}

func TestAuthMissingToken(t *testing.T) {
	r := protectedRouter(t, "admin")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthBadTokenFormat(t *testing.T) {
	r := protectedRouter(t, "admin")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	r := protectedRouter(t, "admin")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRolesForbidsWrongRole(t *testing.T) {
	r := protectedRouter(t, "admin")

	token, err := utils.GenerateToken("tourist@example.com", "tourist", testSecret, 1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	r := protectedRouter(t, "admin")

	token, err := utils.GenerateToken("admin@example.com", "admin", testSecret, 1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "admin@example.com" {
		t.Errorf("handler saw email %q, want admin@example.com", rec.Body.String())
	}
}
