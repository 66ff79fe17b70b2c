package main

import (
	"fmt"
	"strings"

	"go-railway-admin/internal/model"
)

func (m *Menu) adminMenu() {
	for {
		fmt.Println("\n===== Admin Menu =====")
		fmt.Println("1. Manage Stations")
		fmt.Println("2. Manage Trains")
		fmt.Println("3. Manage Routes")
		fmt.Println("4. Manage Schedules")
		fmt.Println("5. View Revenue Report")
		fmt.Println("6. Clear Database")
		fmt.Println("7. Logout")

		option, _ := m.prompt.readInt("Choose an option", 1, 7, false)
		switch option {
		case 1:
			m.manageStations()
		case 2:
			m.manageTrains()
		case 3:
			m.manageRoutes()
		case 4:
			m.manageSchedules()
		case 5:
			m.viewRevenueReport()
		case 6:
			m.clearDatabase()
		case 7:
			m.logout()
			return
		}
	}
}

func (m *Menu) manageStations() {
	for {
		fmt.Println("\n===== Station Management =====")
		fmt.Println("1. Add New Station")
		fmt.Println("2. View All Stations")
		fmt.Println("3. Back to Admin Menu")

		option, _ := m.prompt.readInt("Choose an option", 1, 3, false)
		switch option {
		case 1:
			m.addStation()
		case 2:
			m.viewStations()
		case 3:
			return
		}
	}
}

func (m *Menu) addStation() {
	name, ok := m.prompt.readString("Enter station name", 2, true)
	if !ok {
		return
	}

	if m.stations.FindStation(name) != nil {
		fmt.Println("A station with this name already exists.")
		m.prompt.pause()
		return
	}

	platformCount, ok := m.prompt.readInt("Enter number of platforms", 1, 20, true)
	if !ok {
		return
	}

	m.stations.AddStation(m.ctx, model.NewStation(name, platformCount))

	m.trail.Log("ADD_STATION")
	fmt.Println("Station added successfully!")
	m.prompt.pause()
}

func (m *Menu) viewStations() {
	stations := m.stations.Stations()

	fmt.Println("\n===== All Stations =====")
	if len(stations) == 0 {
		fmt.Println("No stations available.")
	} else {
		fmt.Printf("%-25s | %-15s\n", "Station Name", "Platforms")
		fmt.Println(strings.Repeat("-", 43))
		for _, station := range stations {
			fmt.Printf("%-25s | %-15d\n", station.Name, station.PlatformCount)
		}
	}

	m.trail.Log("VIEW_STATIONS")
	m.prompt.pause()
}

func (m *Menu) manageTrains() {
	for {
		fmt.Println("\n===== Train Management =====")
		fmt.Println("1. Add New Train")
		fmt.Println("2. View All Trains")
		fmt.Println("3. Back to Admin Menu")

		option, _ := m.prompt.readInt("Choose an option", 1, 3, false)
		switch option {
		case 1:
			m.addTrain()
		case 2:
			m.viewTrains()
		case 3:
			return
		}
	}
}

func (m *Menu) addTrain() {
	number, ok := m.prompt.readString("Enter train number", 2, true)
	if !ok {
		return
	}

	if m.stations.FindTrain(number) != nil {
		fmt.Println("A train with this number already exists.")
		m.prompt.pause()
		return
	}

	trainType, ok := m.prompt.readString("Enter train type (e.g., InterRegio, Regio)", 2, true)
	if !ok {
		return
	}

	capacity, ok := m.prompt.readInt("Enter train capacity", 1, 1000, true)
	if !ok {
		return
	}

	m.stations.AddTrain(m.ctx, model.NewTrain(number, trainType, capacity))

	m.trail.Log("ADD_TRAIN")
	fmt.Println("Train added successfully!")
	m.prompt.pause()
}

func (m *Menu) viewTrains() {
	trains := m.stations.Trains()

	fmt.Println("\n===== All Trains =====")
	if len(trains) == 0 {
		fmt.Println("No trains available.")
	} else {
		fmt.Printf("%-10s | %-15s | %-10s\n", "Number", "Type", "Capacity")
		fmt.Println(strings.Repeat("-", 40))
		for _, train := range trains {
			fmt.Printf("%-10s | %-15s | %-10d\n", train.Number, train.Type, train.Capacity)
		}
	}

	m.trail.Log("VIEW_TRAINS")
	m.prompt.pause()
}

func (m *Menu) manageRoutes() {
	for {
		fmt.Println("\n===== Route Management =====")
		fmt.Println("1. Add New Route")
		fmt.Println("2. Update Route Price")
		fmt.Println("3. View All Routes")
		fmt.Println("4. Back to Admin Menu")

		option, _ := m.prompt.readInt("Choose an option", 1, 4, false)
		switch option {
		case 1:
			m.addRoute()
		case 2:
			m.updateRoutePrice()
		case 3:
			m.viewRoutes()
		case 4:
			return
		}
	}
}

func (m *Menu) addRoute() {
	stations := m.stations.Stations()
	if len(stations) < 2 {
		fmt.Println("You need at least two stations to create a route.")
		m.prompt.pause()
		return
	}

	fmt.Println("\n===== Available Stations =====")
	for i, station := range stations {
		fmt.Printf("%d. %s\n", i+1, station.Name)
	}

	originIndex, ok := m.prompt.readInt("Select origin station number", 1, len(stations), true)
	if !ok {
		return
	}
	destIndex, ok := m.prompt.readInt("Select destination station number", 1, len(stations), true)
	if !ok {
		return
	}
	if originIndex == destIndex {
		fmt.Println("Origin and destination cannot be the same station.")
		m.prompt.pause()
		return
	}

	origin := stations[originIndex-1]
	destination := stations[destIndex-1]
	if m.stations.FindRoute(origin.Name, destination.Name) != nil {
		fmt.Println("A route between these stations already exists.")
		m.prompt.pause()
		return
	}

	basePrice, ok := m.prompt.readFloat("Enter base price for this route (RON)", 0.01, true)
	if !ok {
		return
	}

	m.stations.AddRoute(m.ctx, model.NewRoute(origin, destination, basePrice))

	m.trail.Log("ADD_ROUTE")
	fmt.Println("Route added successfully!")
	m.prompt.pause()
}

func (m *Menu) updateRoutePrice() {
	routes := m.stations.Routes()
	if len(routes) == 0 {
		fmt.Println("No routes available to update.")
		m.prompt.pause()
		return
	}

	fmt.Println("\n===== Routes for Price Update =====")
	for i, route := range routes {
		fmt.Printf("%d. %s -> %s (Current price: %.2f RON)\n",
			i+1, route.Origin.Name, route.Destination.Name, route.BasePrice)
	}

	routeIndex, ok := m.prompt.readInt("Select route number to update", 1, len(routes), true)
	if !ok {
		return
	}

	newPrice, ok := m.prompt.readFloat("Enter new price for this route (RON)", 0.01, true)
	if !ok {
		return
	}

	route := routes[routeIndex-1]
	m.stations.UpdateRoutePrice(m.ctx, route.Origin.Name, route.Destination.Name, newPrice)

	m.trail.Log("UPDATE_ROUTE_PRICE")
	fmt.Println("Route price updated successfully!")
	m.prompt.pause()
}

func (m *Menu) viewRoutes() {
	routes := m.stations.Routes()

	fmt.Println("\n===== All Routes =====")
	if len(routes) == 0 {
		fmt.Println("No routes available.")
	} else {
		fmt.Printf("%-25s | %-25s | %-10s\n", "Origin", "Destination", "Price (RON)")
		fmt.Println(strings.Repeat("-", 64))
		for _, route := range routes {
			fmt.Printf("%-25s | %-25s | %10.2f\n",
				route.Origin.Name, route.Destination.Name, route.BasePrice)
		}
	}

	m.trail.Log("VIEW_ROUTES")
	m.prompt.pause()
}

func (m *Menu) manageSchedules() {
	for {
		fmt.Println("\n===== Schedule Management =====")
		fmt.Println("1. Add New Schedule")
		fmt.Println("2. View All Schedules")
		fmt.Println("3. Find Schedules by Destination")
		fmt.Println("4. Back to Admin Menu")

		option, _ := m.prompt.readInt("Choose an option", 1, 4, false)
		switch option {
		case 1:
			m.addSchedule()
		case 2:
			m.viewSchedules()
		case 3:
			m.findSchedulesByDestination()
		case 4:
			return
		}
	}
}

func (m *Menu) addSchedule() {
	trains := m.stations.Trains()
	routes := m.stations.Routes()

	if len(trains) == 0 {
		fmt.Println("No trains available. Please add trains first.")
		m.prompt.pause()
		return
	}
	if len(routes) == 0 {
		fmt.Println("No routes available. Please add routes first.")
		m.prompt.pause()
		return
	}

	fmt.Println("\n===== Available Trains =====")
	for i, train := range trains {
		fmt.Printf("%d. %s (%s)\n", i+1, train.Number, train.Type)
	}
	trainIndex, ok := m.prompt.readInt("Select train number", 1, len(trains), true)
	if !ok {
		return
	}

	fmt.Println("\n===== Available Routes =====")
	for i, route := range routes {
		fmt.Printf("%d. %s -> %s\n", i+1, route.Origin.Name, route.Destination.Name)
	}
	routeIndex, ok := m.prompt.readInt("Select route number", 1, len(routes), true)
	if !ok {
		return
	}

	departureTime, ok := m.prompt.readTime("Enter departure time")
	if !ok {
		return
	}
	arrivalTime, ok := m.prompt.readTime("Enter arrival time")
	if !ok {
		return
	}
	if departureTime > arrivalTime {
		fmt.Println("Arrival time cannot be earlier than departure time.")
		m.prompt.pause()
		return
	}

	route := routes[routeIndex-1]
	maxPlatform := route.Origin.PlatformCount
	if maxPlatform <= 0 {
		fmt.Printf("Error: The origin station (%s) doesn't have any platforms available.\n", route.Origin.Name)
		m.prompt.pause()
		return
	}

	fmt.Printf("\n===== Available Platforms at %s =====\n", route.Origin.Name)
	fmt.Printf("This station has %d platform(s) numbered 1 to %d\n", maxPlatform, maxPlatform)

	platformNumber, ok := m.prompt.readInt(
		fmt.Sprintf("Enter platform number (1-%d)", maxPlatform), 1, maxPlatform, true)
	if !ok {
		return
	}

	train := trains[trainIndex-1]
	m.stations.AddSchedule(model.NewSchedule(train, route, departureTime, arrivalTime, platformNumber))

	m.trail.Log("ADD_SCHEDULE")
	fmt.Println("Schedule added successfully!")
	m.prompt.pause()
}

func (m *Menu) viewRevenueReport() {
	fmt.Println("\n===== Revenue Report =====")
	fmt.Printf("Total Revenue: %.2f RON\n", m.tickets.TotalRevenue())

	m.trail.Log("VIEW_REVENUE_REPORT")
	m.prompt.pause()
}

func (m *Menu) clearDatabase() {
	fmt.Println("\n===== Clear Database =====")
	fmt.Println("WARNING: This will delete all data from the database!")

	if !m.prompt.readYesNo("Are you sure you want to proceed?") {
		fmt.Println("Database clearing aborted.")
		return
	}

	password, ok := m.prompt.readString("Enter admin password to confirm", 1, true)
	if !ok {
		return
	}

	if !m.users.CurrentUser().Authenticate(password) {
		fmt.Println("Incorrect password. Database clearing aborted.")
		m.prompt.pause()
		return
	}

	// Routes reference stations, so they go first. Admin accounts survive.
	m.routeRepo.ClearAll(m.ctx)
	m.trainRepo.ClearAll(m.ctx)
	m.stationRepo.ClearAll(m.ctx)
	m.userRepo.ClearAllExceptAdmins(m.ctx)

	m.trail.Log("CLEAR_DATABASE")
	fmt.Println("Database cleared successfully!")
	m.prompt.pause()
}
