package service

import (
	"go-railway-admin/internal/model"
	apperrors "go-railway-admin/pkg/app_errors"
)

// TicketService tracks sold tickets. Tickets are not persisted; the list
// lives for the process lifetime.
type TicketService interface {
	PurchaseTicket(customer *model.User, schedule *model.Schedule, firstClass bool) (*model.Ticket, error)
	TicketsByCustomer(customer *model.User) []*model.Ticket
	TotalRevenue() float64
	AllTickets() []*model.Ticket
}

type TicketServiceImpl struct {
	tickets []*model.Ticket
}

func NewTicketService() TicketService {
	return &TicketServiceImpl{
		tickets: make([]*model.Ticket, 0),
	}
}

// PurchaseTicket creates the ticket and appends the same reference to both
// the service list and the customer's own list.
func (s *TicketServiceImpl) PurchaseTicket(customer *model.User, schedule *model.Schedule, firstClass bool) (*model.Ticket, error) {
	if !customer.IsCustomer() {
		return nil, apperrors.ErrNotCustomer
	}

	ticket := model.NewTicket(customer, schedule, firstClass)
	s.tickets = append(s.tickets, ticket)
	customer.AddTicket(ticket)
	return ticket, nil
}

func (s *TicketServiceImpl) TicketsByCustomer(customer *model.User) []*model.Ticket {
	result := make([]*model.Ticket, 0)
	for _, ticket := range s.tickets {
		if ticket.Customer.Username == customer.Username {
			result = append(result, ticket)
		}
	}
	return result
}

// TotalRevenue sums the price of every ticket sold, for the admin revenue
// report.
func (s *TicketServiceImpl) TotalRevenue() float64 {
	var total float64
	for _, ticket := range s.tickets {
		total += ticket.Price
	}
	return total
}

func (s *TicketServiceImpl) AllTickets() []*model.Ticket {
	return s.tickets
}
