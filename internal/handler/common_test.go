package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/repository"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore keeps sessions in a map so handler tests run without
// redis.
type fakeSessionStore struct {
	sessions map[string]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, sess session.Session) (string, error) {
	token := "token-" + sess.Username
	s.sessions[token] = &sess
	return token, nil
}

func (s *fakeSessionStore) Get(_ context.Context, token string) (*session.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type testEnv struct {
	users    service.UserService
	stations service.StationService
	tickets  service.TicketService

	stationRepo repository.StationRepository
	trainRepo   repository.TrainRepository
	routeRepo   repository.RouteRepository
	userRepo    repository.UserRepository

	store *fakeSessionStore
	trail *audit.Trail
}

// setupEnv builds the full service stack on nil-pool repositories plus a
// fake session store and a throwaway audit trail.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	stationRepo := repository.NewStationRepository(nil)
	trainRepo := repository.NewTrainRepository(nil)
	routeRepo := repository.NewRouteRepository(nil, stationRepo)
	userRepo := repository.NewUserRepository(nil)

	trail := audit.Open(filepath.Join(t.TempDir(), "audit.csv"))
	t.Cleanup(trail.Close)

	return &testEnv{
		users:       service.NewUserService(ctx, userRepo),
		stations:    service.NewStationService(ctx, stationRepo, trainRepo, routeRepo),
		tickets:     service.NewTicketService(),
		stationRepo: stationRepo,
		trainRepo:   trainRepo,
		routeRepo:   routeRepo,
		userRepo:    userRepo,
		store:       newFakeSessionStore(),
		trail:       trail,
	}
}

// adminToken registers an admin account and opens a session for it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	if e.users.FindByUsername(ctx, "admin") == nil {
		_, err := e.users.RegisterAdmin(ctx, "admin", "admin123")
		require.NoError(t, err)
	}
	token, err := e.store.Create(ctx, session.Session{Username: "admin", Role: "ADMIN"})
	require.NoError(t, err)
	return token
}

// customerToken registers a customer account and opens a session for it.
func (e *testEnv) customerToken(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	if e.users.FindByUsername(ctx, username) == nil {
		_, err := e.users.RegisterCustomer(ctx, username, "pass123!", "Test Customer", username+"@example.com")
		require.NoError(t, err)
	}
	token, err := e.store.Create(ctx, session.Session{Username: username, Role: "CUSTOMER"})
	require.NoError(t, err)
	return token
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonRequest(t *testing.T, method, url string, body any, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(session.TokenHeader, token)
	}
	return req
}
