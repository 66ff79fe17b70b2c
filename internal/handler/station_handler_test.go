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

func setupStationRouter(env *testEnv) *gin.Engine {
	router := newTestRouter()
	NewStationHandler(env.stations, env.store, env.trail).RegisterRoutes(router)
	return router
}

func TestCreateStation(t *testing.T) {
	t.Run("Success - admin", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "POST", "/api/v1/stations", CreateStationRequest{
			Name:          "Bucharest North",
			PlatformCount: 5,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, env.stations.FindStation("Bucharest North"))
	})

	t.Run("Failed - customer is forbidden", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "POST", "/api/v1/stations", CreateStationRequest{
			Name:          "Bucharest North",
			PlatformCount: 5,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Nil(t, env.stations.FindStation("Bucharest North"))
	})

	t.Run("Failed - duplicate name", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)
		env.stations.AddStation(context.Background(), model.NewStation("Bucharest North", 5))

		req := jsonRequest(t, "POST", "/api/v1/stations", CreateStationRequest{
			Name:          "Bucharest North",
			PlatformCount: 3,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - no session", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)

		req := jsonRequest(t, "POST", "/api/v1/stations", CreateStationRequest{
			Name:          "Bucharest North",
			PlatformCount: 5,
		}, "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - platform count out of range", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "POST", "/api/v1/stations", CreateStationRequest{
			Name:          "Bucharest North",
			PlatformCount: 21,
		}, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetStation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.customerToken(t, "john")
		env.stations.AddStation(context.Background(), model.NewStation("Constanta", 3))

		req := jsonRequest(t, "GET", "/api/v1/stations/Constanta", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Constanta")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "GET", "/api/v1/stations/Nowhere", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListStations(t *testing.T) {
	env := setupEnv(t)
	router := setupStationRouter(env)
	token := env.customerToken(t, "john")
	env.stations.AddStation(context.Background(), model.NewStation("Brasov", 4))

	req := jsonRequest(t, "GET", "/api/v1/stations", nil, token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Brasov")
}

func TestDeleteStation(t *testing.T) {
	t.Run("Success - gone from the listing", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)
		env.stations.AddStation(context.Background(), model.NewStation("Brasov", 4))

		req := jsonRequest(t, "DELETE", "/api/v1/stations/Brasov", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Nil(t, env.stations.FindStation("Brasov"))

		req = jsonRequest(t, "GET", "/api/v1/stations", nil, token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.NotContains(t, w.Body.String(), "Brasov")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)

		req := jsonRequest(t, "DELETE", "/api/v1/stations/Brasov", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - still used by a route", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.adminToken(t)

		ctx := context.Background()
		bucharest := model.NewStation("Bucharest North", 5)
		constanta := model.NewStation("Constanta", 3)
		env.stations.AddStation(ctx, bucharest)
		env.stations.AddStation(ctx, constanta)
		env.stations.AddRoute(ctx, model.NewRoute(bucharest, constanta, 225.0))

		req := jsonRequest(t, "DELETE", "/api/v1/stations/Constanta", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NotNil(t, env.stations.FindStation("Constanta"))
	})

	t.Run("Failed - customer is forbidden", func(t *testing.T) {
		env := setupEnv(t)
		router := setupStationRouter(env)
		token := env.customerToken(t, "john")

		req := jsonRequest(t, "DELETE", "/api/v1/stations/Brasov", nil, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
