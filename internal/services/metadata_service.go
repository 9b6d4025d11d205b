package services

import (
	"context"

	"romarchive/internal/models"
)

var _ MetadataService = (*metadataService)(nil)

// MetadataStore is the slice of the repository the metadata service needs.
// The repository caches each lookup table after its first read, so the
// service can call through freely.
type MetadataStore interface {
	ListConsoles(ctx context.Context) ([]models.Console, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	ListLanguages(ctx context.Context) ([]models.Language, error)
	ListPatchStatuses(ctx context.Context) ([]models.PatchStatus, error)
	ListHackCategories(ctx context.Context) ([]models.Category, error)
	ListUtilCategories(ctx context.Context) ([]models.Category, error)
	ListDocCategories(ctx context.Context) ([]models.Category, error)
	ListHomebrewCategories(ctx context.Context) ([]models.Category, error)
	ListSkillLevels(ctx context.Context) ([]models.SkillLevel, error)
	ListOperatingSystems(ctx context.Context) ([]models.OS, error)
	ListLicenses(ctx context.Context) ([]models.License, error)
	ListSections(ctx context.Context) ([]models.Section, error)
	ListPatchHints(ctx context.Context) ([]models.PatchHint, error)
}

type metadataService struct {
	Store MetadataStore
}

// NewMetadataService creates a new MetadataService.
func NewMetadataService(store MetadataStore) *metadataService {
	return &metadataService{Store: store}
}

// GetAllMetadata assembles the combined bootstrap payload frontends load
// once at startup. Any single failing lookup fails the whole call; a
// partial payload would leave the client with undecodable foreign keys.
// The lookups run sequentially: the repository caches each table after
// its first read, so only the first call pays for the fan-out.
func (s *metadataService) GetAllMetadata(ctx context.Context) (*models.AllMetadata, error) {
	var (
		meta models.AllMetadata
		err  error
	)

	if meta.Consoles, err = s.Store.ListConsoles(ctx); err != nil {
		return nil, err
	}
	if meta.Genres, err = s.Store.ListGenres(ctx); err != nil {
		return nil, err
	}
	if meta.Languages, err = s.Store.ListLanguages(ctx); err != nil {
		return nil, err
	}
	if meta.PatchStatuses, err = s.Store.ListPatchStatuses(ctx); err != nil {
		return nil, err
	}
	if meta.HackCategories, err = s.Store.ListHackCategories(ctx); err != nil {
		return nil, err
	}
	if meta.UtilCategories, err = s.Store.ListUtilCategories(ctx); err != nil {
		return nil, err
	}
	if meta.DocCategories, err = s.Store.ListDocCategories(ctx); err != nil {
		return nil, err
	}
	if meta.HomebrewCategories, err = s.Store.ListHomebrewCategories(ctx); err != nil {
		return nil, err
	}
	if meta.SkillLevels, err = s.Store.ListSkillLevels(ctx); err != nil {
		return nil, err
	}
	if meta.OperatingSystems, err = s.Store.ListOperatingSystems(ctx); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *metadataService) GetConsoles(ctx context.Context) ([]models.Console, error) {
	return s.Store.ListConsoles(ctx)
}

func (s *metadataService) GetGenres(ctx context.Context) ([]models.Genre, error) {
	return s.Store.ListGenres(ctx)
}

func (s *metadataService) GetLanguages(ctx context.Context) ([]models.Language, error) {
	return s.Store.ListLanguages(ctx)
}

func (s *metadataService) GetPatchStatuses(ctx context.Context) ([]models.PatchStatus, error) {
	return s.Store.ListPatchStatuses(ctx)
}

func (s *metadataService) GetHackCategories(ctx context.Context) ([]models.Category, error) {
	return s.Store.ListHackCategories(ctx)
}

func (s *metadataService) GetUtilCategories(ctx context.Context) ([]models.Category, error) {
	return s.Store.ListUtilCategories(ctx)
}

func (s *metadataService) GetDocCategories(ctx context.Context) ([]models.Category, error) {
	return s.Store.ListDocCategories(ctx)
}

func (s *metadataService) GetHomebrewCategories(ctx context.Context) ([]models.Category, error) {
	return s.Store.ListHomebrewCategories(ctx)
}

func (s *metadataService) GetSkillLevels(ctx context.Context) ([]models.SkillLevel, error) {
	return s.Store.ListSkillLevels(ctx)
}

func (s *metadataService) GetOperatingSystems(ctx context.Context) ([]models.OS, error) {
	return s.Store.ListOperatingSystems(ctx)
}

func (s *metadataService) GetLicenses(ctx context.Context) ([]models.License, error) {
	return s.Store.ListLicenses(ctx)
}

func (s *metadataService) GetSections(ctx context.Context) ([]models.Section, error) {
	return s.Store.ListSections(ctx)
}

func (s *metadataService) GetPatchHints(ctx context.Context) ([]models.PatchHint, error) {
	return s.Store.ListPatchHints(ctx)
}
