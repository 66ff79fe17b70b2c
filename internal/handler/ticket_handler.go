package handler

import (
	"errors"
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"
	apperrors "go-railway-admin/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	tickets  service.TicketService
	stations service.StationService
	users    service.UserService
	store    session.Store
	trail    *audit.Trail
}

func NewTicketHandler(tickets service.TicketService, stations service.StationService, users service.UserService, store session.Store, trail *audit.Trail) *TicketHandler {
	return &TicketHandler{tickets: tickets, stations: stations, users: users, store: store, trail: trail}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.POST("tickets", h.Purchase)
		router.GET("tickets", h.ListMine)
	}
	admin := r.Group("/api/v1", session.Middleware(h.store), session.RequireAdmin())
	{
		admin.GET("tickets/all", h.ListAll)
		admin.GET("tickets/revenue", h.Revenue)
	}
}

type PurchaseTicketRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required"`
	FirstClass bool   `json:"first_class"`
}

// Purchase sells a ticket on a schedule to the session's customer. First
// class costs 1.5 times the route's base price.
func (h *TicketHandler) Purchase(c *gin.Context) {
	var req PurchaseTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	customer := h.users.FindByUsername(c, session.FromContext(c).Username)
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	schedule := h.stations.FindSchedule(req.ScheduleID)
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	ticket, err := h.tickets.PurchaseTicket(customer, schedule, req.FirstClass)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.trail.Log("PURCHASE_TICKET")
	c.JSON(http.StatusCreated, ticket.Response())
}

func (h *TicketHandler) ListMine(c *gin.Context) {
	customer := h.users.FindByUsername(c, session.FromContext(c).Username)
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	owned := h.tickets.TicketsByCustomer(customer)
	responses := make([]model.TicketResponse, 0, len(owned))
	for _, ticket := range owned {
		responses = append(responses, ticket.Response())
	}

	h.trail.Log("VIEW_MY_TICKETS")
	c.JSON(http.StatusOK, responses)
}

func (h *TicketHandler) ListAll(c *gin.Context) {
	all := h.tickets.AllTickets()
	responses := make([]model.TicketResponse, 0, len(all))
	for _, ticket := range all {
		responses = append(responses, ticket.Response())
	}
	c.JSON(http.StatusOK, responses)
}

// Revenue reports the total value of every ticket sold in this process.
func (h *TicketHandler) Revenue(c *gin.Context) {
	h.trail.Log("VIEW_REVENUE_REPORT")
	c.JSON(http.StatusOK, gin.H{
		"tickets_sold":  len(h.tickets.AllTickets()),
		"total_revenue": h.tickets.TotalRevenue(),
	})
}

func (h *TicketHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotCustomer):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only customers can purchase tickets"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
