package handler

import (
	"net/http"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	stations service.StationService
	users    service.UserService
	store    session.Store
	trail    *audit.Trail
}

func NewReservationHandler(stations service.StationService, users service.UserService, store session.Store, trail *audit.Trail) *ReservationHandler {
	return &ReservationHandler{stations: stations, users: users, store: store, trail: trail}
}

func (h *ReservationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", session.Middleware(h.store))
	{
		router.POST("reservations", h.Create)
		router.GET("reservations", h.ListMine)
		router.POST("reservations/:id/confirm", h.Confirm)
		router.POST("reservations/:id/cancel", h.Cancel)
	}
}

type CreateReservationRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required"`
	SeatNumber int    `json:"seat_number" binding:"required,min=1"`
}

// Create reserves a seat on a schedule for the session's user. The seat
// number is checked against the train's capacity but not against other
// reservations; double booking a seat is allowed.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	customer := h.users.FindByUsername(c, session.FromContext(c).Username)
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !customer.IsCustomer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only customers can make reservations"})
		return
	}

	schedule := h.stations.FindSchedule(req.ScheduleID)
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	if req.SeatNumber > schedule.Train.Capacity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seat number exceeds the train's capacity"})
		return
	}

	reservation := h.stations.ReserveSeat(customer, schedule, req.SeatNumber)

	h.trail.Log("MAKE_RESERVATION")
	c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	username := session.FromContext(c).Username
	mine := make([]*model.Reservation, 0)
	for _, reservation := range h.stations.Reservations() {
		if reservation.Customer.Username == username {
			mine = append(mine, reservation)
		}
	}
	c.JSON(http.StatusOK, mine)
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	reservation, ok := h.ownReservation(c)
	if !ok {
		return
	}

	h.stations.ConfirmReservation(reservation.ID)

	h.trail.Log("CONFIRM_RESERVATION")
	c.JSON(http.StatusOK, reservation)
}

// Cancel flips the reservation back to unconfirmed. The record is kept and
// can be confirmed again later.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	reservation, ok := h.ownReservation(c)
	if !ok {
		return
	}

	h.stations.CancelReservation(reservation.ID)

	h.trail.Log("CANCEL_RESERVATION")
	c.JSON(http.StatusOK, reservation)
}

// ownReservation resolves the :id path parameter to a reservation owned by
// the session's user. Admins may act on any reservation.
func (h *ReservationHandler) ownReservation(c *gin.Context) (*model.Reservation, bool) {
	reservation := h.stations.FindReservation(c.Param("id"))
	if reservation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return nil, false
	}

	sess := session.FromContext(c)
	if !sess.IsAdmin() && reservation.Customer.Username != sess.Username {
		c.JSON(http.StatusForbidden, gin.H{"error": "Reservation belongs to another user"})
		return nil, false
	}
	return reservation, true
}
