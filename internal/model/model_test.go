package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStation(t *testing.T) {
	t.Run("Success - platforms numbered from 1", func(t *testing.T) {
		station := NewStation("Bucharest North", 5)

		require.Len(t, station.Platforms, 5)
		assert.Equal(t, 1, station.Platforms[0].Number)
		assert.Equal(t, 5, station.Platforms[4].Number)
		assert.Equal(t, 5, station.PlatformCount)
	})

	t.Run("Success - platform lookup", func(t *testing.T) {
		station := NewStation("Brasov", 4)

		platform := station.Platform(3)
		require.NotNil(t, platform)
		assert.Equal(t, 3, platform.Number)

		assert.Nil(t, station.Platform(5))
		assert.Nil(t, station.Platform(0))
	})

	t.Run("Success - zero platforms", func(t *testing.T) {
		station := NewStation("Halt", 0)
		assert.Empty(t, station.Platforms)
	})
}

func TestTicketPrice(t *testing.T) {
	t.Run("Standard class keeps base price", func(t *testing.T) {
		assert.Equal(t, 225.0, TicketPrice(225.0, false))
	})

	t.Run("First class multiplies by 1.5", func(t *testing.T) {
		assert.Equal(t, 337.5, TicketPrice(225.0, true))
	})
}

func TestNewTicket(t *testing.T) {
	customer := NewCustomer("john", "pass123", "John Doe", "john@example.com")
	route := NewRoute(NewStation("Bucharest North", 5), NewStation("Constanta", 3), 100.0)
	train := NewTrain("IR1582", "InterRegio", 120)
	schedule := NewSchedule(train, route, "08:00", "10:30", 1)

	t.Run("Success - price fixed at purchase", func(t *testing.T) {
		ticket := NewTicket(customer, schedule, true)

		assert.Len(t, ticket.ID, 8)
		assert.Equal(t, 150.0, ticket.Price)

		// A later route price change does not touch the ticket.
		route.BasePrice = 500.0
		assert.Equal(t, 150.0, ticket.Price)
		route.BasePrice = 100.0
	})

	t.Run("Success - response view", func(t *testing.T) {
		ticket := NewTicket(customer, schedule, false)
		resp := ticket.Response()

		assert.Equal(t, "john", resp.Customer)
		assert.Equal(t, "IR1582", resp.Train)
		assert.Equal(t, "Bucharest North", resp.From)
		assert.Equal(t, "Constanta", resp.To)
		assert.Equal(t, 100.0, resp.Price)
		assert.False(t, resp.FirstClass)
	})
}

func TestReservationLifecycle(t *testing.T) {
	customer := NewCustomer("john", "pass123", "John Doe", "john@example.com")
	route := NewRoute(NewStation("Bucharest North", 5), NewStation("Constanta", 3), 100.0)
	schedule := NewSchedule(NewTrain("IR1582", "InterRegio", 120), route, "08:00", "10:30", 1)

	t.Run("Starts unconfirmed", func(t *testing.T) {
		reservation := NewReservation(customer, schedule, 12)

		assert.Len(t, reservation.ID, 8)
		assert.False(t, reservation.IsConfirmed())
	})

	t.Run("Cancel toggles back to unconfirmed", func(t *testing.T) {
		reservation := NewReservation(customer, schedule, 12)

		reservation.Confirm()
		assert.True(t, reservation.IsConfirmed())

		reservation.Cancel()
		assert.False(t, reservation.IsConfirmed())

		// The record can be confirmed again after a cancel.
		reservation.Confirm()
		assert.True(t, reservation.IsConfirmed())
	})
}

func TestUserRoles(t *testing.T) {
	t.Run("Admin has no customer fields", func(t *testing.T) {
		admin := NewAdmin("admin", "admin123")

		assert.True(t, admin.IsAdmin())
		assert.False(t, admin.IsCustomer())
		assert.Empty(t, admin.FullName)
		assert.Empty(t, admin.Email)
	})

	t.Run("Customer carries profile and tickets", func(t *testing.T) {
		customer := NewCustomer("john", "pass123", "John Doe", "john@example.com")

		assert.True(t, customer.IsCustomer())
		assert.False(t, customer.IsAdmin())
		assert.NotNil(t, customer.Tickets)
		assert.Empty(t, customer.Tickets)
	})

	t.Run("Authenticate compares exact password", func(t *testing.T) {
		admin := NewAdmin("admin", "admin123")

		assert.True(t, admin.Authenticate("admin123"))
		assert.False(t, admin.Authenticate("Admin123"))
		assert.False(t, admin.Authenticate(""))
	})

	t.Run("Role validity", func(t *testing.T) {
		assert.True(t, RoleAdmin.IsValid())
		assert.True(t, RoleCustomer.IsValid())
		assert.False(t, UserRole("GUEST").IsValid())
	})
}

func TestRouteKey(t *testing.T) {
	route := NewRoute(NewStation("Bucharest North", 5), NewStation("Constanta", 3), 225.0)
	assert.Equal(t, "Bucharest North-Constanta", route.Key())
}
