package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nsflhq/nsfl-api/internal/domain/user"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
}

func (s *stubVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	if s.err != nil {
		return user.Principal{}, s.err
	}
	return s.principal, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	handler := RequireAuth(&stubVerifier{}, okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/matches", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_BadScheme(t *testing.T) {
	handler := RequireAuth(&stubVerifier{}, okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/matches", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_RejectedToken(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)}
	handler := RequireAuth(verifier, okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/matches", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireWriteRole_AllowsEveryStaffRole(t *testing.T) {
	for _, role := range []user.Role{user.RoleAdmin, user.RoleEditor, user.RoleViewer} {
		verifier := &stubVerifier{principal: user.Principal{UserID: "u1", Role: role}}
		handler := RequireWriteRole(verifier, okHandler())

		req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected status 200, got %d", role, rec.Code)
		}
	}
}

func TestRequireDeleteRole_AdminOnly(t *testing.T) {
	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleAdmin, http.StatusOK},
		{user.RoleEditor, http.StatusForbidden},
		{user.RoleViewer, http.StatusForbidden},
	}

	for _, tc := range cases {
		verifier := &stubVerifier{principal: user.Principal{UserID: "u1", Role: tc.role}}
		handler := RequireDeleteRole(verifier, okHandler())

		req := httptest.NewRequest(http.MethodDelete, "/api/blogs/b1", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("role %s: expected status %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}

func TestRequireAuth_PrincipalReachesHandler(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "u1", Email: "staff@nsfl.example", Role: user.RoleEditor}}

	var got user.Principal
	handler := RequireAuth(verifier, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got.UserID != "u1" || got.Role != user.RoleEditor {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://nsfl.example"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	req.Header.Set("Origin", "https://nsfl.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://nsfl.example" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	handler := CORS([]string{"*"}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/matches", nil)
	req.Header.Set("Origin", "https://nsfl.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://allowed.example.com"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}
