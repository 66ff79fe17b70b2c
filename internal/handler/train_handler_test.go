package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-railway-admin/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTrainRouter(env *testEnv) *gin.Engine {
	router := newTestRouter()
	NewTrainHandler(env.stations, env.store, env.trail).RegisterRoutes(router)
	return router
}

func TestCreateTrain(t *testing.T) {
	t.Run("Success - admin", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "POST", "/api/v1/trains", CreateTrainRequest{
			Number:   "IR1582",
			Type:     "InterRegio",
			Capacity: 120,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, env.stations.FindTrain("IR1582"))
	})

	t.Run("Failed - duplicate number", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.adminToken(t)
		env.stations.AddTrain(context.Background(), model.NewTrain("IR1582", "InterRegio", 120))

		req := jsonRequest(t, "POST", "/api/v1/trains", CreateTrainRequest{
			Number:   "IR1582",
			Type:     "Regio",
			Capacity: 80,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - capacity out of range", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "POST", "/api/v1/trains", CreateTrainRequest{
			Number:   "IR1582",
			Type:     "InterRegio",
			Capacity: 1001,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - customer is forbidden", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/trains", CreateTrainRequest{
			Number:   "IR1582",
			Type:     "InterRegio",
			Capacity: 120,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetTrain(t *testing.T) {
	env := setupEnv(t)
	router := setupTrainRouter(env)
	token := env.customerToken(t, "john")
	env.stations.AddTrain(context.Background(), model.NewTrain("R9351", "Regio", 80))

	t.Run("Success", func(t *testing.T) {
		req := jsonRequest(t, "GET", "/api/v1/trains/R9351", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Regio")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		req := jsonRequest(t, "GET", "/api/v1/trains/XX999", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTrain(t *testing.T) {
	t.Run("Success - gone from the listing", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.adminToken(t)
		env.stations.AddTrain(context.Background(), model.NewTrain("R9351", "Regio", 80))

		req := jsonRequest(t, "DELETE", "/api/v1/trains/R9351", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Nil(t, env.stations.FindTrain("R9351"))

		req = jsonRequest(t, "GET", "/api/v1/trains", nil, token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.NotContains(t, w.Body.String(), "R9351")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "DELETE", "/api/v1/trains/R9351", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - customer is forbidden", func(t *testing.T) {
		env := setupEnv(t)
		router := setupTrainRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "DELETE", "/api/v1/trains/R9351", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
