package model

// Train is identified by its number. Type is free text (e.g. InterRegio,
// Regio).
type Train struct {
	Number   string `json:"number" db:"number"`
	Type     string `json:"type" db:"type"`
	Capacity int    `json:"capacity" db:"capacity"`
}

func NewTrain(number, trainType string, capacity int) *Train {
	return &Train{Number: number, Type: trainType, Capacity: capacity}
}
