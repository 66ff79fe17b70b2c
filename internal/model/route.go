package model

// Route is a one-way connection between two stations. A return journey is a
// separate route. The (origin, destination) name pair is the natural key.
type Route struct {
	Origin      *Station `json:"origin"`
	Destination *Station `json:"destination"`
	BasePrice   float64  `json:"base_price" db:"base_price"`
}

func NewRoute(origin, destination *Station, basePrice float64) *Route {
	return &Route{Origin: origin, Destination: destination, BasePrice: basePrice}
}

// Key is the "origin-destination" string used as the natural key and as the
// iteration order for route collections.
func (r *Route) Key() string {
	return r.Origin.Name + "-" + r.Destination.Name
}
