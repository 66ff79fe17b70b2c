package main

import (
	"context"
	"fmt"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/model"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/validation"
)

// Menu drives the console interface. Admins and customers get separate
// menus after login; every completed action lands in the audit trail.
type Menu struct {
	ctx    context.Context
	prompt *prompter
	trail  *audit.Trail

	users    service.UserService
	stations service.StationService
	tickets  service.TicketService

	stationRepo repository.StationRepository
	trainRepo   repository.TrainRepository
	routeRepo   repository.RouteRepository
	userRepo    repository.UserRepository

	connected bool
}

func NewMenu(
	ctx context.Context,
	prompt *prompter,
	trail *audit.Trail,
	users service.UserService,
	stations service.StationService,
	tickets service.TicketService,
	stationRepo repository.StationRepository,
	trainRepo repository.TrainRepository,
	routeRepo repository.RouteRepository,
	userRepo repository.UserRepository,
	connected bool,
) *Menu {
	return &Menu{
		ctx:         ctx,
		prompt:      prompt,
		trail:       trail,
		users:       users,
		stations:    stations,
		tickets:     tickets,
		stationRepo: stationRepo,
		trainRepo:   trainRepo,
		routeRepo:   routeRepo,
		userRepo:    userRepo,
		connected:   connected,
	}
}

// SeedSampleData loads a starter data set the first time the application
// runs against an empty database. Nothing is seeded in memory-only mode.
func (m *Menu) SeedSampleData() {
	if !m.connected {
		fmt.Println("Running in memory mode - database not connected.")
		return
	}
	if len(m.stations.Stations()) > 0 {
		return
	}

	bucharest := model.NewStation("Bucharest North", 5)
	constanta := model.NewStation("Constanta", 3)
	brasov := model.NewStation("Brasov", 4)
	m.stations.AddStation(m.ctx, bucharest)
	m.stations.AddStation(m.ctx, constanta)
	m.stations.AddStation(m.ctx, brasov)

	ir1582 := model.NewTrain("IR1582", "InterRegio", 120)
	r9351 := model.NewTrain("R9351", "Regio", 80)
	m.stations.AddTrain(m.ctx, ir1582)
	m.stations.AddTrain(m.ctx, r9351)

	bucToCon := model.NewRoute(bucharest, constanta, 225.0)
	bucToBra := model.NewRoute(bucharest, brasov, 166.0)
	m.stations.AddRoute(m.ctx, bucToCon)
	m.stations.AddRoute(m.ctx, bucToBra)

	// Seeded accounts skip the registration validators on purpose; the
	// sample customer password would not pass the policy.
	m.userRepo.Save(m.ctx, model.NewAdmin("admin", "admin123"))
	m.userRepo.Save(m.ctx, model.NewCustomer("john", "pass123", "John Doe", "john@example.com"))

	m.stations.AddSchedule(model.NewSchedule(ir1582, bucToCon, "08:00", "10:30", 1))
	m.stations.AddSchedule(model.NewSchedule(r9351, bucToBra, "09:15", "11:45", 3))
}

// Run is the top-level loop: login, register or exit.
func (m *Menu) Run() {
	fmt.Println("\nWELCOME TO THE RAILWAY STATION MANAGEMENT SYSTEM")

	for {
		fmt.Println("\n===== Railway Station Management System =====")
		fmt.Println("1. Login")
		fmt.Println("2. Register as Customer")
		fmt.Println("3. Exit")

		option, _ := m.prompt.readInt("Choose an option", 1, 3, false)
		switch option {
		case 1:
			m.login()
		case 2:
			m.registerCustomer()
		case 3:
			fmt.Println("Goodbye!")
			return
		}
	}
}

func (m *Menu) login() {
	username, ok := m.prompt.readString("Enter username", 1, true)
	if !ok {
		return
	}
	password, ok := m.prompt.readString("Enter password", 1, true)
	if !ok {
		return
	}

	if !m.users.Login(m.ctx, username, password) {
		fmt.Println("Login failed. Invalid username or password.")
		m.prompt.pause()
		return
	}

	m.trail.Log("LOGIN")
	fmt.Println("Login successful!")

	if m.users.IsAdmin() {
		m.adminMenu()
	} else {
		m.customerMenu()
	}
}

func (m *Menu) registerCustomer() {
	var username string
	for {
		input, ok := m.prompt.readString("Enter username", 3, true)
		if !ok {
			return
		}
		if m.users.FindByUsername(m.ctx, input) != nil {
			fmt.Println("Username already exists. Please choose a different username.")
			continue
		}
		username = input
		break
	}

	var password string
	for {
		input, ok := m.prompt.readString(
			"Enter password (min 4 letters, 3 numbers, 1 special character, max 20 chars)", 8, true)
		if !ok {
			return
		}
		if !validation.IsValidPassword(input) {
			fmt.Println("Invalid password format. Please try again.")
			continue
		}
		password = input
		break
	}

	fullName, ok := m.prompt.readString("Enter full name", 3, true)
	if !ok {
		return
	}

	var email string
	for {
		input, ok := m.prompt.readString("Enter email (format: example@domain.com)", 5, true)
		if !ok {
			return
		}
		if !validation.IsValidEmail(input) {
			fmt.Println("Invalid email format. Please try again.")
			continue
		}
		email = input
		break
	}

	if _, err := m.users.RegisterCustomer(m.ctx, username, password, fullName, email); err != nil {
		fmt.Println("Registration failed:", err)
		m.prompt.pause()
		return
	}

	m.trail.Log("REGISTER_CUSTOMER")
	fmt.Println("Customer registration successful!")
	m.prompt.pause()
}

func (m *Menu) logout() {
	m.users.Logout()
	m.trail.Log("LOGOUT")
	fmt.Println("Logged out successfully.")
}
