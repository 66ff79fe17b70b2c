package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(env *testEnv) *gin.Engine {
	router := newTestRouter()
	NewAuthHandler(env.users, env.store, env.trail).RegisterRoutes(router)
	return router
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/register", RegisterRequest{
			Username: "john",
			Password: "pass123!",
			FullName: "John Doe",
			Email:    "john@example.com",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "pass123!")
	})

	t.Run("Failed - username taken", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)
		env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/auth/register", RegisterRequest{
			Username: "john",
			Password: "pass123!",
			FullName: "Other John",
			Email:    "other@example.com",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - weak password", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/register", RegisterRequest{
			Username: "john",
			Password: "weak",
			FullName: "John Doe",
			Email:    "john@example.com",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid email", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/register", RegisterRequest{
			Username: "john",
			Password: "pass123!",
			FullName: "John Doe",
			Email:    "not-an-email",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - binding error", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/register", gin.H{"username": "x"}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success - returns token and role", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)
		env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/auth/login", LoginRequest{
			Username: "john",
			Password: "pass123!",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "CUSTOMER", body["role"])
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)
		env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/auth/login", LoginRequest{
			Username: "john",
			Password: "wrong",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - unknown user", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/login", LoginRequest{
			Username: "ghost",
			Password: "whatever",
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success - session is gone afterwards", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/auth/logout", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		req = jsonRequest(t, "POST", "/api/v1/auth/logout", nil, token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - no session", func(t *testing.T) {
		env := setupEnv(t)
		router := setupAuthRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/auth/logout", nil, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
