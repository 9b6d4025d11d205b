package services

import (
	"context"

	"romarchive/internal/models"
)

// The hack, translation, utility, document and homebrew services are thin:
// validate the requested window, then delegate to the store. The interesting
// work (filter composition, sorting, name resolution) lives in the listing
// engine behind the store.

var (
	_ HackService        = (*hackService)(nil)
	_ TranslationService = (*translationService)(nil)
	_ UtilityService     = (*utilityService)(nil)
	_ DocumentService    = (*documentService)(nil)
	_ HomebrewService    = (*homebrewService)(nil)
)

// HackStore is the slice of the repository the hack service needs.
type HackStore interface {
	ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error)
	GetHack(ctx context.Context, id int64) (*models.HackDetail, error)
	ListHackImages(ctx context.Context, hackID int64) ([]models.HackImage, error)
}

type hackService struct {
	Store HackStore
}

// NewHackService creates a new HackService.
func NewHackService(store HackStore) *hackService {
	return &hackService{Store: store}
}

func (s *hackService) ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListHacks(ctx, filter, params)
}

func (s *hackService) GetHack(ctx context.Context, id int64) (*models.HackDetail, error) {
	return s.Store.GetHack(ctx, id)
}

func (s *hackService) ListHackImages(ctx context.Context, hackID int64) ([]models.HackImage, error) {
	return s.Store.ListHackImages(ctx, hackID)
}

// TranslationStore is the slice of the repository the translation service needs.
type TranslationStore interface {
	ListTranslations(ctx context.Context, filter models.TranslationFilter, params models.ListParams) (*models.Paginated[models.TranslationListItem], error)
	GetTranslation(ctx context.Context, id int64) (*models.TranslationDetail, error)
	ListTranslationImages(ctx context.Context, transID int64) ([]models.TransImage, error)
}

type translationService struct {
	Store TranslationStore
}

// NewTranslationService creates a new TranslationService.
func NewTranslationService(store TranslationStore) *translationService {
	return &translationService{Store: store}
}

func (s *translationService) ListTranslations(ctx context.Context, filter models.TranslationFilter, params models.ListParams) (*models.Paginated[models.TranslationListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListTranslations(ctx, filter, params)
}

func (s *translationService) GetTranslation(ctx context.Context, id int64) (*models.TranslationDetail, error) {
	return s.Store.GetTranslation(ctx, id)
}

func (s *translationService) ListTranslationImages(ctx context.Context, transID int64) ([]models.TransImage, error) {
	return s.Store.ListTranslationImages(ctx, transID)
}

// UtilityStore is the slice of the repository the utility service needs.
type UtilityStore interface {
	ListUtilities(ctx context.Context, filter models.UtilityFilter, params models.ListParams) (*models.Paginated[models.UtilityListItem], error)
	GetUtility(ctx context.Context, id int64) (*models.UtilityDetail, error)
}

type utilityService struct {
	Store UtilityStore
}

// NewUtilityService creates a new UtilityService.
func NewUtilityService(store UtilityStore) *utilityService {
	return &utilityService{Store: store}
}

func (s *utilityService) ListUtilities(ctx context.Context, filter models.UtilityFilter, params models.ListParams) (*models.Paginated[models.UtilityListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListUtilities(ctx, filter, params)
}

func (s *utilityService) GetUtility(ctx context.Context, id int64) (*models.UtilityDetail, error) {
	return s.Store.GetUtility(ctx, id)
}

// DocumentStore is the slice of the repository the document service needs.
type DocumentStore interface {
	ListDocuments(ctx context.Context, filter models.DocumentFilter, params models.ListParams) (*models.Paginated[models.DocumentListItem], error)
	GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error)
}

type documentService struct {
	Store DocumentStore
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store DocumentStore) *documentService {
	return &documentService{Store: store}
}

func (s *documentService) ListDocuments(ctx context.Context, filter models.DocumentFilter, params models.ListParams) (*models.Paginated[models.DocumentListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListDocuments(ctx, filter, params)
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error) {
	return s.Store.GetDocument(ctx, id)
}

// HomebrewStore is the slice of the repository the homebrew service needs.
type HomebrewStore interface {
	ListHomebrew(ctx context.Context, filter models.HomebrewFilter, params models.ListParams) (*models.Paginated[models.HomebrewListItem], error)
	GetHomebrew(ctx context.Context, id int64) (*models.HomebrewDetail, error)
}

type homebrewService struct {
	Store HomebrewStore
}

// NewHomebrewService creates a new HomebrewService.
func NewHomebrewService(store HomebrewStore) *homebrewService {
	return &homebrewService{Store: store}
}

func (s *homebrewService) ListHomebrew(ctx context.Context, filter models.HomebrewFilter, params models.ListParams) (*models.Paginated[models.HomebrewListItem], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.Store.ListHomebrew(ctx, filter, params)
}

func (s *homebrewService) GetHomebrew(ctx context.Context, id int64) (*models.HomebrewDetail, error) {
	return s.Store.GetHomebrew(ctx, id)
}
