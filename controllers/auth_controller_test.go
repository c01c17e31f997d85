package controllers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"backend/middleware"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "alice", "secret123", "user")

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "secret123"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var session *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			session = cookie
		}
	}
	if session == nil {
		t.Fatal("expected auth-token cookie to be set")
	}
	if !session.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if session.SameSite != http.SameSiteStrictMode {
		t.Error("session cookie must be SameSite=Strict")
	}
	if !session.Expires.After(time.Now().Add(23 * time.Hour)) {
		t.Errorf("session cookie should last 24h, expires %v", session.Expires)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success response, got %v", body)
	}
	data := body["data"].(map[string]interface{})
	if data["username"] != "alice" {
		t.Errorf("expected username alice, got %v", data["username"])
	}
	if _, leaked := data["password"]; leaked {
		t.Error("login response must not contain the password hash")
	}

	// Cookie vừa phát hành phải qua được gate.
	listResp := doRequest(t, app, http.MethodGet, "/api/platforms", nil, session.Value)
	if listResp.StatusCode != http.StatusOK {
		t.Errorf("expected gate to accept fresh session, got %d", listResp.StatusCode)
	}
	listResp.Body.Close()
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "alice", "secret123", "user")

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "wrong"}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AuthCookieName && cookie.Value != "" {
			t.Error("failed login must not set a session cookie")
		}
	}
	resp.Body.Close()
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ghost", "password": "whatever"}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGateRejectsMissingToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/crawlers", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for API without session, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Errorf("expected success:false, got %v", body)
	}
}

func TestGateRedirectsPagesToAuth(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/dashboard", nil, "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/auth" {
		t.Errorf("expected redirect to /auth, got %q", loc)
	}
	resp.Body.Close()
}

func TestGateRejectsGarbageToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/crawlers", nil, "not-a-jwt")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminPageNonAdminRedirectsToDashboard(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "bob", "secret123", "user")
	token := login(t, app, "bob", "secret123")

	resp := doRequest(t, app, http.MethodGet, "/dashboard/admin/accounts", nil, token)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	// Phiên hợp lệ nhưng thiếu quyền thì về dashboard chung, không về /auth.
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
	resp.Body.Close()
}

func TestAccountsAPIRequiresAdminRole(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "bob", "secret123", "user")
	token := login(t, app, "bob", "secret123")

	resp := doRequest(t, app, http.MethodGet, "/api/accounts", nil, token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLogoutClearsCookie(t *testing.T) {
	app := setupTestApp(t)
	seedAccount(t, "alice", "secret123", "user")
	token := login(t, app, "alice", "secret123")

	resp := doRequest(t, app, http.MethodPost, "/api/auth/logout", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	cleared := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			if cookie.Value == "" || cookie.Expires.Before(time.Now()) {
				cleared = true
			}
		}
	}
	if !cleared {
		t.Error("logout must clear the auth-token cookie")
	}
	resp.Body.Close()
}

func TestPublicPathsSkipGate(t *testing.T) {
	app := setupTestApp(t)

	for _, path := range []string{"/api/auth/login", "/auth"} {
		resp := doRequest(t, app, http.MethodPost, path, map[string]string{}, "")
		if resp.StatusCode == http.StatusUnauthorized || strings.HasPrefix(resp.Header.Get("Location"), "/auth") {
			t.Errorf("public path %s must not be gated", path)
		}
		resp.Body.Close()
	}
}
