// Package services holds the business layer between the HTTP handlers and
// the archive repository. Services validate request windows and shape the
// responses; all data access goes through the narrow store interfaces so the
// layer is testable without a database.
package services

import (
	"context"

	"romarchive/internal/models"
)

// GameService defines the interface for browsing games.
type GameService interface {
	ListGames(ctx context.Context, filter models.GameFilter, params models.ListParams) (*models.Paginated[models.GameListItem], error)
	GetGame(ctx context.Context, id int64) (*models.GameDetail, error)
	ListGameHacks(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.HackListItem], error)
	ListGameTranslations(ctx context.Context, gameID int64, params models.ListParams) (*models.Paginated[models.TranslationListItem], error)
}

// HackService defines the interface for browsing ROM hacks.
type HackService interface {
	ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error)
	GetHack(ctx context.Context, id int64) (*models.HackDetail, error)
	ListHackImages(ctx context.Context, hackID int64) ([]models.HackImage, error)
}

// TranslationService defines the interface for browsing translations.
type TranslationService interface {
	ListTranslations(ctx context.Context, filter models.TranslationFilter, params models.ListParams) (*models.Paginated[models.TranslationListItem], error)
	GetTranslation(ctx context.Context, id int64) (*models.TranslationDetail, error)
	ListTranslationImages(ctx context.Context, transID int64) ([]models.TransImage, error)
}

// UtilityService defines the interface for browsing utilities.
type UtilityService interface {
	ListUtilities(ctx context.Context, filter models.UtilityFilter, params models.ListParams) (*models.Paginated[models.UtilityListItem], error)
	GetUtility(ctx context.Context, id int64) (*models.UtilityDetail, error)
}

// DocumentService defines the interface for browsing documents.
type DocumentService interface {
	ListDocuments(ctx context.Context, filter models.DocumentFilter, params models.ListParams) (*models.Paginated[models.DocumentListItem], error)
	GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error)
}

// HomebrewService defines the interface for browsing homebrew projects.
type HomebrewService interface {
	ListHomebrew(ctx context.Context, filter models.HomebrewFilter, params models.ListParams) (*models.Paginated[models.HomebrewListItem], error)
	GetHomebrew(ctx context.Context, id int64) (*models.HomebrewDetail, error)
}

// MetadataService defines the interface for the lookup tables that decode
// foreign keys into display text.
type MetadataService interface {
	GetAllMetadata(ctx context.Context) (*models.AllMetadata, error)
	GetConsoles(ctx context.Context) ([]models.Console, error)
	GetGenres(ctx context.Context) ([]models.Genre, error)
	GetLanguages(ctx context.Context) ([]models.Language, error)
	GetPatchStatuses(ctx context.Context) ([]models.PatchStatus, error)
	GetHackCategories(ctx context.Context) ([]models.Category, error)
	GetUtilCategories(ctx context.Context) ([]models.Category, error)
	GetDocCategories(ctx context.Context) ([]models.Category, error)
	GetHomebrewCategories(ctx context.Context) ([]models.Category, error)
	GetSkillLevels(ctx context.Context) ([]models.SkillLevel, error)
	GetOperatingSystems(ctx context.Context) ([]models.OS, error)
	GetLicenses(ctx context.Context) ([]models.License, error)
	GetSections(ctx context.Context) ([]models.Section, error)
	GetPatchHints(ctx context.Context) ([]models.PatchHint, error)
}

// HealthService defines the interface for the health probe.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}
