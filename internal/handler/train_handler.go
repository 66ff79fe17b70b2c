package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	stations service.StationService
	store    session.Store
	trail    *audit.Trail
}

func NewTrainHandler(stations service.StationService, store session.Store, trail *audit.Trail) *TrainHandler {
	return &TrainHandler{stations: stations, store: store, trail: trail}
}

func (h *TrainHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.GET("trains", h.List)
		router.GET("trains/:number", h.Get)
	}
	admin := r.Group("/api/v1", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.POST("trains", h.Create)
		admin.DELETE("trains/:number", h.Delete)
	}
}

type CreateTrainRequest struct {
	Number   string `json:"number" binding:"required,min=2"`
	Type     string `json:"type" binding:"required,min=2"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=1000"`
}

func (h *TrainHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.stations.Trains())
}

func (h *TrainHandler) Get(c *gin.Context) {
	train := h.stations.FindTrain(c.Param("number"))
	if train == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
		return
	}
	c.JSON(http.StatusOK, train)
}

func (h *TrainHandler) Create(c *gin.Context) {
	var req CreateTrainRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if h.stations.FindTrain(req.Number) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A train with this number already exists"})
		return
	}

	train := model.NewTrain(req.Number, req.Type, req.Capacity)
	h.stations.AddTrain(c, train)

	h.trail.Log("ADD_TRAIN")
	c.JSON(http.StatusCreated, train)
}

// Delete removes the train from the service and the database together.
func (h *TrainHandler) Delete(c *gin.Context) {
	if !h.stations.RemoveTrain(c, c.Param("number")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
		return
	}

	h.trail.Log("DELETE_TRAIN")
	c.Status(http.StatusNoContent)
}
