package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	users    service.UserService
	stations repository.StationRepository
	trains   repository.TrainRepository
	routes   repository.RouteRepository
	accounts repository.UserRepository
	store    session.Store
	trail    *audit.Trail
}

func NewAdminHandler(
	users service.UserService,
	stations repository.StationRepository,
	trains repository.TrainRepository,
	routes repository.RouteRepository,
	accounts repository.UserRepository,
	store session.Store,
	trail *audit.Trail,
) *AdminHandler {
	return &AdminHandler{
		users:    users,
		stations: stations,
		trains:   trains,
		routes:   routes,
		accounts: accounts,
		store:    store,
		trail:    trail,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/api/v1/admin", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.POST("clear-database", h.ClearDatabase)
	}
}

type ClearDatabaseRequest struct {
	Password string `json:"password" binding:"required"`
}

// ClearDatabase wipes the persisted stations, trains, routes and customer
// accounts. Admin accounts survive. The caller must re-enter their password;
// a valid session alone is not enough for this one.
//
// Only the database is cleared. State already loaded in memory stays until
// the process restarts.
func (h *AdminHandler) ClearDatabase(c *gin.Context) {
	var req ClearDatabaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	username := session.FromContext(c).Username
	if _, ok := h.users.Authenticate(c, username, req.Password); !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Password confirmation failed"})
		return
	}

	// Routes reference stations, so they go first.
	h.routes.ClearAll(c)
	h.trains.ClearAll(c)
	h.stations.ClearAll(c)
	h.accounts.ClearAllExceptAdmins(c)

	h.trail.Log("CLEAR_DATABASE")
	c.JSON(http.StatusOK, gin.H{"message": "Database cleared"})
}
