package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	stations service.StationService
	store    session.Store
	trail    *audit.Trail
}

func NewRouteHandler(stations service.StationService, store session.Store, trail *audit.Trail) *RouteHandler {
	return &RouteHandler{stations: stations, store: store, trail: trail}
}

func (h *RouteHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.GET("routes", h.List)
	}
	admin := r.Group("/api/v1", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.POST("routes", h.Create)
		admin.PUT("routes/price", h.UpdatePrice)
		admin.DELETE("routes", h.Delete)
	}
}

type CreateRouteRequest struct {
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"required,gt=0"`
}

type UpdateRoutePriceRequest struct {
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	NewPrice    float64 `json:"new_price" binding:"required,gt=0"`
}

type DeleteRouteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

func (h *RouteHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.stations.Routes())
}

// Create requires both stations to exist already; routes created through the
// API do not implicitly create stations. One-way only, no reverse route.
func (h *RouteHandler) Create(c *gin.Context) {
	var req CreateRouteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if req.Origin == req.Destination {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination cannot be the same station"})
		return
	}

	origin := h.stations.FindStation(req.Origin)
	destination := h.stations.FindStation(req.Destination)
	if origin == nil || destination == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	if h.stations.FindRoute(req.Origin, req.Destination) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A route between these stations already exists"})
		return
	}

	route := model.NewRoute(origin, destination, req.BasePrice)
	h.stations.AddRoute(c, route)

	h.trail.Log("ADD_ROUTE")
	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) UpdatePrice(c *gin.Context) {
	var req UpdateRoutePriceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if !h.stations.UpdateRoutePrice(c, req.Origin, req.Destination, req.NewPrice) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	h.trail.Log("UPDATE_ROUTE_PRICE")
	c.JSON(http.StatusOK, h.stations.FindRoute(req.Origin, req.Destination))
}

func (h *RouteHandler) Delete(c *gin.Context) {
	var req DeleteRouteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if !h.stations.RemoveRoute(c, req.Origin, req.Destination) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	h.trail.Log("DELETE_ROUTE")
	c.Status(http.StatusNoContent)
}
