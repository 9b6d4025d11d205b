package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"romarchive/internal/logging"
	"romarchive/internal/models"
	"romarchive/internal/services"
)

// --- MOCK GAME SERVICE ---

type MockGameService struct {
	mock.Mock
}

var _ services.GameService = (*MockGameService)(nil)

func (m *MockGameService) ListGames(ctx context.Context, filter models.GameFilter, params models.ListParams) (*models.Paginated[models.GameListItem], error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.GameListItem]), args.Error(1)
}

func (m *MockGameService) GetGame(ctx context.Context, id int64) (*models.GameDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameDetail), args.Error(1)
}

func (m *MockGameService) ListGameHacks(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.HackListItem], error) {
	args := m.Called(ctx, gameID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.HackListItem]), args.Error(1)
}

func (m *MockGameService) ListGameTranslations(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.TranslationListItem], error) {
	args := m.Called(ctx, gameID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.TranslationListItem]), args.Error(1)
}

// --- MOCK HACK SERVICE ---

type MockHackService struct {
	mock.Mock
}

var _ services.HackService = (*MockHackService)(nil)

func (m *MockHackService) ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.HackListItem]), args.Error(1)
}

func (m *MockHackService) GetHack(ctx context.Context, id int64) (*models.HackDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HackDetail), args.Error(1)
}

func (m *MockHackService) ListHackImages(ctx context.Context, hackID int64) ([]models.HackImage, error) {
	args := m.Called(ctx, hackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HackImage), args.Error(1)
}

// --- MOCK HEALTH SERVICE ---

type MockHealthService struct {
	mock.Mock
}

var _ services.HealthService = (*MockHealthService)(nil)

func (m *MockHealthService) Check(ctx context.Context) models.HealthResponse {
	args := m.Called(ctx)
	return args.Get(0).(models.HealthResponse)
}

// testHandlers builds a Handlers instance around the given mocks. Services
// not under test stay nil; the routes exercised by a test must only touch
// the mocks it supplies.
func testHandlers(games services.GameService, hacks services.HackService, health services.HealthService) *Handlers {
	return &Handlers{
		Games:  games,
		Hacks:  hacks,
		Health: health,
		Log:    logging.NewLogger("error"),
	}
}

// serveRequest routes one request through a throwaway mux and records the
// response.
func serveRequest(h *Handlers, method, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/games", h.ListGames).Methods("GET")
	api.HandleFunc("/games/{id:[0-9]+}", h.GetGame).Methods("GET")
	api.HandleFunc("/games/{id:[0-9]+}/hacks", h.ListGameHacks).Methods("GET")
	api.HandleFunc("/hacks", h.ListHacks).Methods("GET")
	api.HandleFunc("/hacks/{id:[0-9]+}", h.GetHack).Methods("GET")
	api.HandleFunc("/hacks/{id:[0-9]+}/images", h.ListHackImages).Methods("GET")
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, http.NoBody))
	return rec
}
