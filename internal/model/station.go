package model

// Platform is a numbered boarding location inside a station. It has no
// identity of its own outside the owning station.
type Platform struct {
	Number int `json:"number"`
}

// Station is a node in the railway network. Platforms are numbered
// contiguously from 1 to PlatformCount.
type Station struct {
	Name          string     `json:"name" db:"name"`
	PlatformCount int        `json:"platform_count" db:"platform_count"`
	Platforms     []Platform `json:"platforms" db:"-"`
}

func NewStation(name string, platformCount int) *Station {
	s := &Station{
		Name:          name,
		PlatformCount: platformCount,
		Platforms:     make([]Platform, 0, platformCount),
	}
	for i := 1; i <= platformCount; i++ {
		s.Platforms = append(s.Platforms, Platform{Number: i})
	}
	return s
}

// Platform returns the platform with the given number, or nil.
func (s *Station) Platform(number int) *Platform {
	for i := range s.Platforms {
		if s.Platforms[i].Number == number {
			return &s.Platforms[i]
		}
	}
	return nil
}
