package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/pkg/api"
)

type authFixture struct {
	handler *AuthHandler
	users   *fakeUserStorage
	tokens  *fakeTokenStorage
}

func newAuthFixture() *authFixture {
	users := newFakeUserStorage()
	tokens := newFakeTokenStorage()
	return &authFixture{
		handler: NewAuthHandler(setupTestLogger(), users, tokens, testJWTConfig()),
		users:   users,
		tokens:  tokens,
	}
}

func (f *authFixture) register(t *testing.T, username, authKeyHash string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  "c2FsdA==",
	}))
	w := httptest.NewRecorder()
	f.handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (f *authFixture) login(t *testing.T, username, authKeyHash string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	}))
	w := httptest.NewRecorder()
	f.handler.Login(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		body       string
		name       string
		wantStatus int
	}{
		{name: "success", body: `{"username":"alice","auth_key_hash":"abc","public_salt":"c2FsdA=="}`, wantStatus: http.StatusCreated},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad username", body: `{"username":"a!","auth_key_hash":"abc","public_salt":"s"}`, wantStatus: http.StatusBadRequest},
		{name: "missing auth key", body: `{"username":"alice","public_salt":"s"}`, wantStatus: http.StatusBadRequest},
		{name: "missing salt", body: `{"username":"alice","auth_key_hash":"abc"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			w := httptest.NewRecorder()
			f.handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.wantStatus != http.StatusCreated {
				resp := decode[api.ErrorResponse](t, w)
				assert.NotEmpty(t, resp.Message)
				return
			}

			resp := decode[api.RegisterResponse](t, w)
			assert.NotEmpty(t, resp.UserID)

			stored := f.users.users["alice"]
			require.NotNil(t, stored)
			// хранится bcrypt, а не присланный хеш
			assert.NotEqual(t, "abc", stored.AuthKeyHash)
			assert.True(t, strings.HasPrefix(stored.AuthKeyHash, "$2"))
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice", "abc")

	w := httptest.NewRecorder()
	f.handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"alice","auth_key_hash":"x","public_salt":"y"}`)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_GetSalt(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice", "abc")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", f.handler.GetSalt)

	tests := []struct {
		path       string
		wantSalt   string
		wantStatus int
	}{
		{path: "/api/v1/auth/salt/alice", wantStatus: http.StatusOK, wantSalt: "c2FsdA=="},
		{path: "/api/v1/auth/salt/bob", wantStatus: http.StatusNotFound},
		{path: "/api/v1/auth/salt/b!", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantSalt != "" {
				assert.Equal(t, tt.wantSalt, decode[api.SaltResponse](t, w).PublicSalt)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice", "correct")

	t.Run("success", func(t *testing.T) {
		w := f.login(t, "alice", "correct")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[api.TokenResponse](t, w)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, int64(900), resp.ExpiresIn)

		user := f.users.users["alice"]
		assert.Equal(t, user.ID, resp.UserID)
		assert.Contains(t, f.users.lastLogin, user.ID)

		claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong auth key", func(t *testing.T) {
		w := f.login(t, "alice", "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := f.login(t, "nobody", "correct")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty auth key", func(t *testing.T) {
		w := f.login(t, "alice", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice", "key")
	first := decode[api.TokenResponse](t, f.login(t, "alice", "key"))

	refresh := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		if token != "" {
			bearer(req, token)
		}
		w := httptest.NewRecorder()
		f.handler.Refresh(w, req)
		return w
	}

	w := refresh(first.RefreshToken)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[api.TokenResponse](t, w)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, first.UserID, second.UserID)

	// старый токен ротирован
	assert.Equal(t, http.StatusUnauthorized, refresh(first.RefreshToken).Code)
	assert.Equal(t, http.StatusUnauthorized, refresh("").Code)

	t.Run("expired", func(t *testing.T) {
		user := f.users.users["alice"]
		require.NoError(t, f.tokens.SaveRefreshToken(t.Context(), &models.RefreshToken{
			Token:     "expired",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}))
		assert.Equal(t, http.StatusUnauthorized, refresh("expired").Code)
		_, err := f.tokens.GetRefreshToken(t.Context(), "expired")
		assert.Error(t, err)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice", "key")
	_ = f.login(t, "alice", "key")
	tokens := decode[api.TokenResponse](t, f.login(t, "alice", "key"))
	require.Equal(t, 2, f.tokens.count())

	tests := []struct {
		token      string
		name       string
		wantStatus int
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", token: "garbage", wantStatus: http.StatusUnauthorized},
		{name: "revokes all sessions", token: tokens.AccessToken, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			if tt.token != "" {
				bearer(req, tt.token)
			}
			w := httptest.NewRecorder()
			f.handler.Logout(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	assert.Zero(t, f.tokens.count())
}
