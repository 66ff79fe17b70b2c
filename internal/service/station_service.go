package service

import (
	"context"
	"sort"
	"strings"

	"go-railway-admin/internal/model"
	"go-railway-admin/internal/repository"
)

// StationService is the business layer for railway operations. Stations,
// trains and routes mirror the persisted state: adds and price updates go to
// both the in-memory collection and the repository. Schedules and
// reservations exist only in memory for the lifetime of the process.
type StationService interface {
	AddStation(ctx context.Context, station *model.Station)
	Stations() []*model.Station
	FindStation(name string) *model.Station
	RemoveStation(ctx context.Context, name string) bool

	AddTrain(ctx context.Context, train *model.Train)
	Trains() []*model.Train
	FindTrain(number string) *model.Train
	RemoveTrain(ctx context.Context, number string) bool

	AddRoute(ctx context.Context, route *model.Route)
	Routes() []*model.Route
	FindRoute(originName, destName string) *model.Route
	UpdateRoutePrice(ctx context.Context, originName, destName string, newPrice float64) bool
	RemoveRoute(ctx context.Context, originName, destName string) bool

	AddSchedule(schedule *model.Schedule)
	Schedules() []*model.Schedule
	FindSchedule(id string) *model.Schedule
	FindSchedulesByDestination(destination string) []*model.Schedule

	ReserveSeat(customer *model.User, schedule *model.Schedule, seatNumber int) *model.Reservation
	Reservations() []*model.Reservation
	FindReservation(id string) *model.Reservation
	ConfirmReservation(id string) bool
	CancelReservation(id string) bool
}

type StationServiceImpl struct {
	stationRepo repository.StationRepository
	trainRepo   repository.TrainRepository
	routeRepo   repository.RouteRepository

	stations     []*model.Station
	trains       []*model.Train
	routes       []*model.Route // kept sorted by Key() for stable iteration
	schedules    []*model.Schedule
	reservations []*model.Reservation
}

func NewStationService(
	ctx context.Context,
	stationRepo repository.StationRepository,
	trainRepo repository.TrainRepository,
	routeRepo repository.RouteRepository,
) StationService {
	s := &StationServiceImpl{
		stationRepo:  stationRepo,
		trainRepo:    trainRepo,
		routeRepo:    routeRepo,
		stations:     make([]*model.Station, 0),
		trains:       make([]*model.Train, 0),
		routes:       make([]*model.Route, 0),
		schedules:    make([]*model.Schedule, 0),
		reservations: make([]*model.Reservation, 0),
	}

	s.stations = append(s.stations, stationRepo.FindAll(ctx)...)
	s.trains = append(s.trains, trainRepo.FindAll(ctx)...)
	for _, route := range routeRepo.FindAll(ctx) {
		s.insertRoute(route)
	}

	return s
}

func (s *StationServiceImpl) AddStation(ctx context.Context, station *model.Station) {
	s.stations = append(s.stations, station)
	s.stationRepo.Save(ctx, station)
}

func (s *StationServiceImpl) Stations() []*model.Station {
	return s.stations
}

func (s *StationServiceImpl) FindStation(name string) *model.Station {
	for _, station := range s.stations {
		if station.Name == name {
			return station
		}
	}
	return nil
}

// RemoveStation drops the station from the collection and the repository.
// It refuses while a route still references the station, mirroring the
// foreign keys on the routes table. The repository delete result is
// swallowed like every other write, so memory-only mode removes normally.
func (s *StationServiceImpl) RemoveStation(ctx context.Context, name string) bool {
	for _, route := range s.routes {
		if route.Origin.Name == name || route.Destination.Name == name {
			return false
		}
	}
	for i, station := range s.stations {
		if station.Name == name {
			s.stations = append(s.stations[:i], s.stations[i+1:]...)
			s.stationRepo.Delete(ctx, name)
			return true
		}
	}
	return false
}

func (s *StationServiceImpl) AddTrain(ctx context.Context, train *model.Train) {
	s.trains = append(s.trains, train)
	s.trainRepo.Save(ctx, train)
}

func (s *StationServiceImpl) Trains() []*model.Train {
	return s.trains
}

func (s *StationServiceImpl) FindTrain(number string) *model.Train {
	for _, train := range s.trains {
		if train.Number == number {
			return train
		}
	}
	return nil
}

// RemoveTrain drops the train from the collection and the repository.
// Schedules already built on the train keep their reference.
func (s *StationServiceImpl) RemoveTrain(ctx context.Context, number string) bool {
	for i, train := range s.trains {
		if train.Number == number {
			s.trains = append(s.trains[:i], s.trains[i+1:]...)
			s.trainRepo.Delete(ctx, number)
			return true
		}
	}
	return false
}

// insertRoute keeps the collection sorted by the "origin-destination" key.
// The order carries no correctness weight, it just makes iteration stable.
func (s *StationServiceImpl) insertRoute(route *model.Route) {
	key := route.Key()
	i := sort.Search(len(s.routes), func(i int) bool {
		return s.routes[i].Key() >= key
	})
	if i < len(s.routes) && s.routes[i].Key() == key {
		return // already present
	}
	s.routes = append(s.routes, nil)
	copy(s.routes[i+1:], s.routes[i:])
	s.routes[i] = route
}

func (s *StationServiceImpl) AddRoute(ctx context.Context, route *model.Route) {
	s.insertRoute(route)
	s.routeRepo.Save(ctx, route)
}

func (s *StationServiceImpl) Routes() []*model.Route {
	return s.routes
}

func (s *StationServiceImpl) FindRoute(originName, destName string) *model.Route {
	for _, route := range s.routes {
		if route.Origin.Name == originName && route.Destination.Name == destName {
			return route
		}
	}
	return nil
}

func (s *StationServiceImpl) UpdateRoutePrice(ctx context.Context, originName, destName string, newPrice float64) bool {
	route := s.FindRoute(originName, destName)
	if route == nil {
		return false
	}
	route.BasePrice = newPrice
	s.routeRepo.UpdatePrice(ctx, originName, destName, newPrice)
	return true
}

// RemoveRoute drops the route from the collection and the repository.
func (s *StationServiceImpl) RemoveRoute(ctx context.Context, originName, destName string) bool {
	for i, route := range s.routes {
		if route.Origin.Name == originName && route.Destination.Name == destName {
			s.routes = append(s.routes[:i], s.routes[i+1:]...)
			s.routeRepo.Delete(ctx, originName, destName)
			return true
		}
	}
	return false
}

func (s *StationServiceImpl) AddSchedule(schedule *model.Schedule) {
	s.schedules = append(s.schedules, schedule)
}

func (s *StationServiceImpl) Schedules() []*model.Schedule {
	return s.schedules
}

func (s *StationServiceImpl) FindSchedule(id string) *model.Schedule {
	for _, schedule := range s.schedules {
		if schedule.ID == id {
			return schedule
		}
	}
	return nil
}

func (s *StationServiceImpl) FindSchedulesByDestination(destination string) []*model.Schedule {
	result := make([]*model.Schedule, 0)
	for _, schedule := range s.schedules {
		if strings.EqualFold(schedule.Route.Destination.Name, destination) {
			result = append(result, schedule)
		}
	}
	return result
}

// ReserveSeat records a reservation. Seat numbers are not checked against
// existing reservations on the schedule.
func (s *StationServiceImpl) ReserveSeat(customer *model.User, schedule *model.Schedule, seatNumber int) *model.Reservation {
	reservation := model.NewReservation(customer, schedule, seatNumber)
	s.reservations = append(s.reservations, reservation)
	return reservation
}

func (s *StationServiceImpl) Reservations() []*model.Reservation {
	return s.reservations
}

func (s *StationServiceImpl) FindReservation(id string) *model.Reservation {
	for _, reservation := range s.reservations {
		if reservation.ID == id {
			return reservation
		}
	}
	return nil
}

func (s *StationServiceImpl) ConfirmReservation(id string) bool {
	reservation := s.FindReservation(id)
	if reservation == nil {
		return false
	}
	reservation.Confirm()
	return true
}

// CancelReservation flips the reservation back to unconfirmed. The record
// stays in the list.
func (s *StationServiceImpl) CancelReservation(id string) bool {
	reservation := s.FindReservation(id)
	if reservation == nil {
		return false
	}
	reservation.Cancel()
	return true
}
