package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	stations service.StationService
	store    session.Store
	trail    *audit.Trail
}

func NewStationHandler(stations service.StationService, store session.Store, trail *audit.Trail) *StationHandler {
	return &StationHandler{stations: stations, store: store, trail: trail}
}

func (h *StationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.GET("stations", h.List)
		router.GET("stations/:name", h.Get)
	}
	admin := r.Group("/api/v1", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.POST("stations", h.Create)
		admin.DELETE("stations/:name", h.Delete)
	}
}

type CreateStationRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	PlatformCount int    `json:"platform_count" binding:"required,min=1,max=20"`
}

func (h *StationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.stations.Stations())
}

func (h *StationHandler) Get(c *gin.Context) {
	station := h.stations.FindStation(c.Param("name"))
	if station == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}
	c.JSON(http.StatusOK, station)
}

func (h *StationHandler) Create(c *gin.Context) {
	var req CreateStationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if h.stations.FindStation(req.Name) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A station with this name already exists"})
		return
	}

	station := model.NewStation(req.Name, req.PlatformCount)
	h.stations.AddStation(c, station)

	h.trail.Log("ADD_STATION")
	c.JSON(http.StatusCreated, station)
}

// Delete removes the station from the service and the database together.
// A station still referenced by a route cannot be removed.
func (h *StationHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if h.stations.FindStation(name) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	if !h.stations.RemoveStation(c, name) {
		c.JSON(http.StatusConflict, gin.H{"error": "Station is still used by a route"})
		return
	}

	h.trail.Log("DELETE_STATION")
	c.Status(http.StatusNoContent)
}
