package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"
	"go-railway-admin/internal/validation"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	stations service.StationService
	store    session.Store
	trail    *audit.Trail
}

func NewScheduleHandler(stations service.StationService, store session.Store, trail *audit.Trail) *ScheduleHandler {
	return &ScheduleHandler{stations: stations, store: store, trail: trail}
}

func (h *ScheduleHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.GET("schedules", h.List)
	}
	admin := r.Group("/api/v1", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.POST("schedules", h.Create)
	}
}

type CreateScheduleRequest struct {
	TrainNumber    string `json:"train_number" binding:"required"`
	Origin         string `json:"origin" binding:"required"`
	Destination    string `json:"destination" binding:"required"`
	DepartureTime  string `json:"departure_time" binding:"required"`
	ArrivalTime    string `json:"arrival_time" binding:"required"`
	PlatformNumber int    `json:"platform_number" binding:"required,min=1"`
}

// List returns all schedules, or only those to ?destination=... when the
// query parameter is present.
func (h *ScheduleHandler) List(c *gin.Context) {
	if destination := c.Query("destination"); destination != "" {
		c.JSON(http.StatusOK, h.stations.FindSchedulesByDestination(destination))
		return
	}
	c.JSON(http.StatusOK, h.stations.Schedules())
}

// Create validates the "HH:MM" times, departure before arrival, and that
// the platform number fits the origin station. The platform check happens
// only here; the schedule itself does not re-check it.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if !validation.IsValidTime(req.DepartureTime) || !validation.IsValidTime(req.ArrivalTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Times must be in HH:MM 24-hour format"})
		return
	}
	departure := validation.NormalizeTime(req.DepartureTime)
	arrival := validation.NormalizeTime(req.ArrivalTime)
	if departure > arrival {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arrival time cannot be earlier than departure time"})
		return
	}

	train := h.stations.FindTrain(req.TrainNumber)
	if train == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
		return
	}

	route := h.stations.FindRoute(req.Origin, req.Destination)
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if req.PlatformNumber > route.Origin.PlatformCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform number exceeds the origin station's platform count"})
		return
	}

	schedule := model.NewSchedule(train, route, departure, arrival, req.PlatformNumber)
	h.stations.AddSchedule(schedule)

	h.trail.Log("ADD_SCHEDULE")
	c.JSON(http.StatusCreated, schedule)
}
