package model

// Reservation holds a seat on a scheduled journey. New reservations start
// unconfirmed. Cancel toggles the reservation back to unconfirmed rather
// than deleting it; there is no separate cancelled state.
//
// Seat numbers are not checked against other reservations: two customers
// may reserve the same seat on the same schedule.
type Reservation struct {
	ID         string    `json:"id"`
	Customer   *User     `json:"-"`
	Schedule   *Schedule `json:"schedule"`
	SeatNumber int       `json:"seat_number"`
	Confirmed  bool      `json:"confirmed"`
}

func NewReservation(customer *User, schedule *Schedule, seatNumber int) *Reservation {
	return &Reservation{
		ID:         newShortID(),
		Customer:   customer,
		Schedule:   schedule,
		SeatNumber: seatNumber,
		Confirmed:  false,
	}
}

// Confirm marks the reservation paid.
func (r *Reservation) Confirm() {
	r.Confirmed = true
}

// Cancel sets the reservation back to unconfirmed. The record is kept.
func (r *Reservation) Cancel() {
	r.Confirmed = false
}

func (r *Reservation) IsConfirmed() bool {
	return r.Confirmed
}
