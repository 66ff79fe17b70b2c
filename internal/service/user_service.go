package service

import (
	"context"

	"go-railway-admin/internal/model"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/validation"
	apperrors "go-railway-admin/pkg/app_errors"
)

// UserService manages accounts and the console session.
//
// Users are cached in memory, seeded from the repository at construction and
// backfilled on lookup miss. The current-user pointer is single-session
// state for the console app; the HTTP API tracks sessions in redis instead
// and only uses Authenticate.
type UserService interface {
	RegisterAdmin(ctx context.Context, username, password string) (*model.User, error)
	RegisterCustomer(ctx context.Context, username, password, fullName, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) *model.User
	Authenticate(ctx context.Context, username, password string) (*model.User, bool)
	Login(ctx context.Context, username, password string) bool
	Logout()
	CurrentUser() *model.User
	IsLoggedIn() bool
	IsAdmin() bool
}

type UserServiceImpl struct {
	repo    repository.UserRepository
	users   map[string]*model.User
	current *model.User
}

func NewUserService(ctx context.Context, repo repository.UserRepository) UserService {
	s := &UserServiceImpl{
		repo:  repo,
		users: make(map[string]*model.User),
	}
	for _, user := range repo.FindAll(ctx) {
		s.users[user.Username] = user
	}
	return s
}

func (s *UserServiceImpl) RegisterAdmin(ctx context.Context, username, password string) (*model.User, error) {
	if s.FindByUsername(ctx, username) != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	admin := model.NewAdmin(username, password)
	s.users[username] = admin
	s.repo.Save(ctx, admin)
	return admin, nil
}

// RegisterCustomer validates the password policy and email shape before
// admitting the account.
func (s *UserServiceImpl) RegisterCustomer(ctx context.Context, username, password, fullName, email string) (*model.User, error) {
	if !validation.IsValidPassword(password) {
		return nil, apperrors.ErrInvalidPassword
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if s.FindByUsername(ctx, username) != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	customer := model.NewCustomer(username, password, fullName, email)
	s.users[username] = customer
	s.repo.Save(ctx, customer)
	return customer, nil
}

// FindByUsername checks the in-memory map first, then the store, caching on
// hit.
func (s *UserServiceImpl) FindByUsername(ctx context.Context, username string) *model.User {
	if user, ok := s.users[username]; ok {
		return user
	}
	if user := s.repo.FindByUsername(ctx, username); user != nil {
		s.users[username] = user
		return user
	}
	return nil
}

// Authenticate resolves the user and compares passwords without touching
// session state.
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, bool) {
	user := s.FindByUsername(ctx, username)
	if user == nil || !user.Authenticate(password) {
		return nil, false
	}
	return user, true
}

// Login sets the current-user pointer on success. There is one session at a
// time; a second login replaces the first.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) bool {
	user, ok := s.Authenticate(ctx, username, password)
	if !ok {
		return false
	}
	s.current = user
	return true
}

func (s *UserServiceImpl) Logout() {
	s.current = nil
}

func (s *UserServiceImpl) CurrentUser() *model.User {
	return s.current
}

func (s *UserServiceImpl) IsLoggedIn() bool {
	return s.current != nil
}

func (s *UserServiceImpl) IsAdmin() bool {
	return s.IsLoggedIn() && s.current.IsAdmin()
}
