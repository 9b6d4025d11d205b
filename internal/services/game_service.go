package services

import (
	"context"

	"romarchive/internal/models"
)

var _ GameService = (*gameService)(nil)

// GameStore is the slice of the repository the game service needs.
type GameStore interface {
	ListGames(ctx context.Context, filter models.GameFilter, params models.ListParams) (*models.Paginated[models.GameListItem], error)
	GetGame(ctx context.Context, id int64) (*models.GameDetail, error)
	ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error)
	ListTranslations(ctx context.Context, filter models.TranslationFilter, params models.ListParams) (*models.Paginated[models.TranslationListItem], error)
}

type gameService struct {
	Store GameStore
}

// NewGameService creates a new GameService.
func NewGameService(store GameStore) *gameService {
	return &gameService{Store: store}
}

func (s *gameService) ListGames(ctx context.Context, filter models.GameFilter, params models.ListParams) (*models.Paginated[models.GameListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListGames(ctx, filter, params)
}

func (s *gameService) GetGame(ctx context.Context, id int64) (*models.GameDetail, error) {
	return s.Store.GetGame(ctx, id)
}

// ListGameHacks returns the hacks of one game. A game with no hacks, or an
// unknown game id, yields an empty page rather than a not-found error.
func (s *gameService) ListGameHacks(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.HackListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListHacks(ctx, models.HackFilter{Game: &gameID}, params)
}

// ListGameTranslations returns the translations of one game with the same
// empty-page semantics as ListGameHacks.
func (s *gameService) ListGameTranslations(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.TranslationListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListTranslations(ctx, models.TranslationFilter{Game: &gameID}, params)
}
