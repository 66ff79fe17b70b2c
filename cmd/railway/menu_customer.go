package main

import (
	"fmt"
	"strings"

	"go-railway-admin/internal/model"
)

func (m *Menu) customerMenu() {
	for {
		fmt.Println("\n===== Customer Menu =====")
		fmt.Println("1. View Available Routes")
		fmt.Println("2. View Schedules")
		fmt.Println("3. Find Schedules by Destination")
		fmt.Println("4. Purchase Ticket")
		fmt.Println("5. View My Tickets")
		fmt.Println("6. Make Reservation")
		fmt.Println("7. My Reservations")
		fmt.Println("8. Logout")

		option, _ := m.prompt.readInt("Choose an option", 1, 8, false)
		switch option {
		case 1:
			m.viewRoutes()
		case 2:
			m.viewSchedules()
		case 3:
			m.findSchedulesByDestination()
		case 4:
			m.purchaseTicket()
		case 5:
			m.viewMyTickets()
		case 6:
			m.makeReservation()
		case 7:
			m.myReservations()
		case 8:
			m.logout()
			return
		}
	}
}

func (m *Menu) viewSchedules() {
	schedules := m.stations.Schedules()

	fmt.Println("\n===== All Schedules =====")
	if len(schedules) == 0 {
		fmt.Println("No schedules available.")
	} else {
		fmt.Printf("%-10s | %-25s | %-25s | %-10s | %-10s | %-8s\n",
			"Train", "Origin", "Destination", "Departure", "Arrival", "Platform")
		fmt.Println(strings.Repeat("-", 96))
		for _, schedule := range schedules {
			fmt.Printf("%-10s | %-25s | %-25s | %-10s | %-10s | %-8d\n",
				schedule.Train.Number,
				schedule.Route.Origin.Name,
				schedule.Route.Destination.Name,
				schedule.DepartureTime,
				schedule.ArrivalTime,
				schedule.PlatformNumber)
		}
	}

	m.trail.Log("VIEW_SCHEDULES")
	m.prompt.pause()
}

func (m *Menu) findSchedulesByDestination() {
	destination, ok := m.prompt.readString("Enter destination station name", 2, true)
	if !ok {
		return
	}

	schedules := m.stations.FindSchedulesByDestination(destination)

	fmt.Printf("\n===== Schedules to %s =====\n", destination)
	if len(schedules) == 0 {
		fmt.Println("No schedules available for this destination.")
	} else {
		fmt.Printf("%-10s | %-25s | %-10s | %-10s | %-8s\n",
			"Train", "From", "Departure", "Arrival", "Platform")
		fmt.Println(strings.Repeat("-", 70))
		for _, schedule := range schedules {
			fmt.Printf("%-10s | %-25s | %-10s | %-10s | %-8d\n",
				schedule.Train.Number,
				schedule.Route.Origin.Name,
				schedule.DepartureTime,
				schedule.ArrivalTime,
				schedule.PlatformNumber)
		}
	}

	m.trail.Log("FIND_SCHEDULES_BY_DESTINATION")
	m.prompt.pause()
}

// chooseSchedule lists the schedules and returns the selected one, or nil
// when there are none or the user backs out.
func (m *Menu) chooseSchedule(heading, prompt string) *model.Schedule {
	schedules := m.stations.Schedules()
	if len(schedules) == 0 {
		return nil
	}

	fmt.Printf("\n===== %s =====\n", heading)
	for i, schedule := range schedules {
		fmt.Printf("%d. Train: %s | From: %s | To: %s | Departure: %s\n",
			i+1,
			schedule.Train.Number,
			schedule.Route.Origin.Name,
			schedule.Route.Destination.Name,
			schedule.DepartureTime)
	}

	index, ok := m.prompt.readInt(prompt, 1, len(schedules), true)
	if !ok {
		return nil
	}
	return schedules[index-1]
}

func (m *Menu) purchaseTicket() {
	if len(m.stations.Schedules()) == 0 {
		fmt.Println("No schedules available for booking tickets.")
		m.prompt.pause()
		return
	}

	schedule := m.chooseSchedule("Available Schedules", "Select schedule number")
	if schedule == nil {
		return
	}

	firstClass := m.prompt.readYesNo("Would you like first class?")

	fmt.Printf("Ticket price will be %.2f RON\n", model.TicketPrice(schedule.Route.BasePrice, firstClass))
	if !m.prompt.readYesNo("Confirm purchase?") {
		fmt.Println("Ticket purchase canceled.")
		m.prompt.pause()
		return
	}

	ticket, err := m.tickets.PurchaseTicket(m.users.CurrentUser(), schedule, firstClass)
	if err != nil {
		fmt.Println("Purchase failed:", err)
		m.prompt.pause()
		return
	}

	m.trail.Log("PURCHASE_TICKET")
	fmt.Println("Ticket purchased successfully!")
	fmt.Println("Ticket ID:", ticket.ID)
	fmt.Printf("Total price: %.2f RON\n", ticket.Price)
	m.prompt.pause()
}

func (m *Menu) viewMyTickets() {
	tickets := m.tickets.TicketsByCustomer(m.users.CurrentUser())

	fmt.Println("\n===== My Tickets =====")
	if len(tickets) == 0 {
		fmt.Println("You don't have any tickets yet.")
	} else {
		fmt.Printf("%-8s | %-25s | %-25s | %-10s | %-10s | %-12s | %-10s\n",
			"ID", "From", "To", "Departure", "Price", "First Class", "Train")
		fmt.Println(strings.Repeat("-", 110))
		for _, ticket := range tickets {
			firstClass := "No"
			if ticket.FirstClass {
				firstClass = "Yes"
			}
			fmt.Printf("%-8s | %-25s | %-25s | %-10s | %10.2f | %-12s | %-10s\n",
				ticket.ID,
				ticket.Schedule.Route.Origin.Name,
				ticket.Schedule.Route.Destination.Name,
				ticket.Schedule.DepartureTime,
				ticket.Price,
				firstClass,
				ticket.Schedule.Train.Number)
		}
	}

	m.trail.Log("VIEW_MY_TICKETS")
	m.prompt.pause()
}

func (m *Menu) makeReservation() {
	if len(m.stations.Schedules()) == 0 {
		fmt.Println("No schedules available for reservation.")
		m.prompt.pause()
		return
	}

	schedule := m.chooseSchedule("Available Schedules for Reservation", "Select schedule number for reservation")
	if schedule == nil {
		return
	}

	seatNumber, ok := m.prompt.readInt("Enter seat number", 1, 100, true)
	if !ok {
		return
	}
	if seatNumber > schedule.Train.Capacity {
		fmt.Printf("Selected seat number exceeds train capacity (%d).\n", schedule.Train.Capacity)
		m.prompt.pause()
		return
	}

	reservation := m.stations.ReserveSeat(m.users.CurrentUser(), schedule, seatNumber)

	m.trail.Log("MAKE_RESERVATION")
	fmt.Println("Reservation made successfully!")
	fmt.Println("Reservation ID:", reservation.ID)
	fmt.Printf("Please pay %.2f RON within 24 hours to confirm your reservation.\n",
		schedule.Route.BasePrice)
	m.prompt.pause()
}

// myReservations lists the customer's reservations and lets them confirm
// or cancel one. Cancelling keeps the record, it just drops the
// confirmation.
func (m *Menu) myReservations() {
	username := m.users.CurrentUser().Username
	mine := make([]*model.Reservation, 0)
	for _, reservation := range m.stations.Reservations() {
		if reservation.Customer.Username == username {
			mine = append(mine, reservation)
		}
	}

	fmt.Println("\n===== My Reservations =====")
	if len(mine) == 0 {
		fmt.Println("You don't have any reservations yet.")
		m.trail.Log("VIEW_MY_RESERVATIONS")
		m.prompt.pause()
		return
	}

	fmt.Printf("%-8s | %-10s | %-25s | %-6s | %-10s\n",
		"ID", "Train", "Destination", "Seat", "Status")
	fmt.Println(strings.Repeat("-", 70))
	for i, reservation := range mine {
		status := "Pending"
		if reservation.IsConfirmed() {
			status = "Confirmed"
		}
		fmt.Printf("%d. %-5s | %-10s | %-25s | %-6d | %-10s\n",
			i+1,
			reservation.ID,
			reservation.Schedule.Train.Number,
			reservation.Schedule.Route.Destination.Name,
			reservation.SeatNumber,
			status)
	}
	m.trail.Log("VIEW_MY_RESERVATIONS")

	index, ok := m.prompt.readInt("Select reservation number to manage", 1, len(mine), true)
	if !ok {
		return
	}
	reservation := mine[index-1]

	fmt.Println("1. Confirm Reservation")
	fmt.Println("2. Cancel Reservation")
	option, ok := m.prompt.readInt("Choose an option", 1, 2, true)
	if !ok {
		return
	}

	switch option {
	case 1:
		m.stations.ConfirmReservation(reservation.ID)
		m.trail.Log("CONFIRM_RESERVATION")
		fmt.Println("Reservation confirmed!")
	case 2:
		m.stations.CancelReservation(reservation.ID)
		m.trail.Log("CANCEL_RESERVATION")
		fmt.Println("Reservation canceled. The record is kept as unconfirmed.")
	}
	m.prompt.pause()
}
