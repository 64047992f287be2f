package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryakart/suryakart/pkg/storage"
)

func TestHandleLogin(t *testing.T) {
	srv, signer := newTestServer(t, storage.NewMemory())
	handler := srv.setupHandler()

	login := func(body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body)))
		return rr
	}
	tokenBody := func(token string) string {
		b, err := json.Marshal(map[string]string{"token": token})
		require.NoError(t, err)
		return string(b)
	}

	t.Run("Valid Login", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		token := signer.token("user@example.com", "user-subject", expires)
		result := login(tokenBody(token)).Result()
		assert.Equal(t, http.StatusOK, result.StatusCode)

		found := false
		for _, c := range result.Cookies() {
			if c.Name == authTokenCookie {
				found = true
				assert.Equal(t, token, c.Value)
				assert.True(t, c.HttpOnly)
				assert.True(t, c.Secure)
				assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
				assert.WithinDuration(t, expires, c.Expires, 2*time.Second)
			}
		}
		assert.True(t, found, "auth cookie should be set")
	})

	t.Run("Invalid Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, login(tokenBody("invalid-token")).Code)
	})

	t.Run("Wrong Client", func(t *testing.T) {
		token := signer.token("user@example.com", "user-subject", time.Now().Add(time.Hour))
		b, err := json.Marshal(map[string]string{"token": token, "client": "apple"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, login(string(b)).Code)
	})

	t.Run("Token Missing Email", func(t *testing.T) {
		token := signer.token("", "user-subject", time.Now().Add(time.Hour))
		rr := login(tokenBody(token))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid oidc claims", decodeError(t, rr))
	})

	t.Run("Invalid Request Body", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, login("invalid-json").Code)
	})
}

func TestHandleLogout(t *testing.T) {
	srv, _ := newTestServer(t, storage.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	// an expired token must not stop the logout
	req.AddCookie(&http.Cookie{Name: authTokenCookie, Value: "some-token"})
	rr := httptest.NewRecorder()
	srv.setupHandler().ServeHTTP(rr, req)

	result := rr.Result()
	assert.Equal(t, http.StatusOK, result.StatusCode)
	found := false
	for _, c := range result.Cookies() {
		if c.Name == authTokenCookie {
			found = true
			assert.Equal(t, "", c.Value)
			assert.True(t, c.MaxAge < 0)
		}
	}
	assert.True(t, found, "auth cookie should be cleared")
}

func TestHandleAuthStatus(t *testing.T) {
	srv, signer := newTestServer(t, storage.NewMemory())
	handler := srv.setupHandler()

	status := func(token string) authStatusResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: authTokenCookie, Value: token})
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp authStatusResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		return resp
	}

	t.Run("Anonymous", func(t *testing.T) {
		resp := status("")
		assert.False(t, resp.LoggedIn)
		assert.True(t, resp.AuthRequired)
		assert.Equal(t, map[string]string{"google": testAudience}, resp.ClientIDs)
	})

	t.Run("User", func(t *testing.T) {
		resp := status(signer.token("User@Example.com", "u1", time.Now().Add(time.Hour)))
		assert.True(t, resp.LoggedIn)
		assert.Equal(t, "User@Example.com", resp.Email)
		assert.False(t, resp.Admin)
	})

	t.Run("Admin", func(t *testing.T) {
		resp := status(signer.token("ADMIN@example.com", "a1", time.Now().Add(time.Hour)))
		assert.True(t, resp.LoggedIn)
		assert.True(t, resp.Admin)
	})
}
