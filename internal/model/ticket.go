package model

import "github.com/google/uuid"

// FirstClassMultiplier is applied to the route base price for first-class
// tickets.
const FirstClassMultiplier = 1.5

// newShortID returns the 8-char id used for tickets and reservations.
func newShortID() string {
	return uuid.New().String()[:8]
}

// TicketPrice derives the ticket price from the route base price.
func TicketPrice(basePrice float64, firstClass bool) float64 {
	if firstClass {
		return basePrice * FirstClassMultiplier
	}
	return basePrice
}

// Ticket grants a customer travel on a scheduled journey. The price is fixed
// at purchase time; tickets are immutable afterwards.
type Ticket struct {
	ID         string    `json:"id"`
	Customer   *User     `json:"-"`
	Schedule   *Schedule `json:"schedule"`
	Price      float64   `json:"price"`
	FirstClass bool      `json:"first_class"`
}

func NewTicket(customer *User, schedule *Schedule, firstClass bool) *Ticket {
	return &Ticket{
		ID:         newShortID(),
		Customer:   customer,
		Schedule:   schedule,
		Price:      TicketPrice(schedule.Route.BasePrice, firstClass),
		FirstClass: firstClass,
	}
}

// TicketResponse is the API view of a ticket.
type TicketResponse struct {
	ID         string  `json:"id"`
	Customer   string  `json:"customer"`
	Train      string  `json:"train"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Departure  string  `json:"departure"`
	Price      float64 `json:"price"`
	FirstClass bool    `json:"first_class"`
}

func (t *Ticket) Response() TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		Customer:   t.Customer.Username,
		Train:      t.Schedule.Train.Number,
		From:       t.Schedule.Route.Origin.Name,
		To:         t.Schedule.Route.Destination.Name,
		Departure:  t.Schedule.DepartureTime,
		Price:      t.Price,
		FirstClass: t.FirstClass,
	}
}
