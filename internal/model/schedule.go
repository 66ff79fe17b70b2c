package model

// Schedule is a scheduled train journey on a route. Times are "HH:MM"
// strings. PlatformNumber must fit the origin station's platform count;
// that is checked where schedules are created, not here.
type Schedule struct {
	ID             string `json:"id"`
	Train          *Train `json:"train"`
	Route          *Route `json:"route"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	PlatformNumber int    `json:"platform_number"`
}

func NewSchedule(train *Train, route *Route, departureTime, arrivalTime string, platformNumber int) *Schedule {
	return &Schedule{
		ID:             newShortID(),
		Train:          train,
		Route:          route,
		DepartureTime:  departureTime,
		ArrivalTime:    arrivalTime,
		PlatformNumber: platformNumber,
	}
}
