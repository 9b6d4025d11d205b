package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"romarchive/internal/models"
)

type MockMetadataStore struct {
	mock.Mock
}

var _ MetadataStore = (*MockMetadataStore)(nil)

func listCall[T any](m *mock.Mock, method string, ctx context.Context) ([]T, error) {
	args := m.MethodCalled(method, ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockMetadataStore) ListConsoles(ctx context.Context) ([]models.Console, error) {
	return listCall[models.Console](&m.Mock, "ListConsoles", ctx)
}
func (m *MockMetadataStore) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return listCall[models.Genre](&m.Mock, "ListGenres", ctx)
}
func (m *MockMetadataStore) ListLanguages(ctx context.Context) ([]models.Language, error) {
	return listCall[models.Language](&m.Mock, "ListLanguages", ctx)
}
func (m *MockMetadataStore) ListPatchStatuses(ctx context.Context) ([]models.PatchStatus, error) {
	return listCall[models.PatchStatus](&m.Mock, "ListPatchStatuses", ctx)
}
func (m *MockMetadataStore) ListHackCategories(ctx context.Context) ([]models.Category, error) {
	return listCall[models.Category](&m.Mock, "ListHackCategories", ctx)
}
func (m *MockMetadataStore) ListUtilCategories(ctx context.Context) ([]models.Category, error) {
	return listCall[models.Category](&m.Mock, "ListUtilCategories", ctx)
}
func (m *MockMetadataStore) ListDocCategories(ctx context.Context) ([]models.Category, error) {
	return listCall[models.Category](&m.Mock, "ListDocCategories", ctx)
}
func (m *MockMetadataStore) ListHomebrewCategories(ctx context.Context) ([]models.Category, error) {
	return listCall[models.Category](&m.Mock, "ListHomebrewCategories", ctx)
}
func (m *MockMetadataStore) ListSkillLevels(ctx context.Context) ([]models.SkillLevel, error) {
	return listCall[models.SkillLevel](&m.Mock, "ListSkillLevels", ctx)
}
func (m *MockMetadataStore) ListOperatingSystems(ctx context.Context) ([]models.OS, error) {
	return listCall[models.OS](&m.Mock, "ListOperatingSystems", ctx)
}
func (m *MockMetadataStore) ListLicenses(ctx context.Context) ([]models.License, error) {
	return listCall[models.License](&m.Mock, "ListLicenses", ctx)
}
func (m *MockMetadataStore) ListSections(ctx context.Context) ([]models.Section, error) {
	return listCall[models.Section](&m.Mock, "ListSections", ctx)
}
func (m *MockMetadataStore) ListPatchHints(ctx context.Context) ([]models.PatchHint, error) {
	return listCall[models.PatchHint](&m.Mock, "ListPatchHints", ctx)
}

func stubAllLookups(store *MockMetadataStore) {
	store.On("ListConsoles", mock.Anything).Return([]models.Console{{ConsoleID: 1, Description: "SNES"}}, nil)
	store.On("ListGenres", mock.Anything).Return([]models.Genre{{GenreID: 1, Description: "Platformer"}}, nil)
	store.On("ListLanguages", mock.Anything).Return([]models.Language{{LanguageID: 1, Description: "English"}}, nil)
	store.On("ListPatchStatuses", mock.Anything).Return([]models.PatchStatus{{StatusID: 1, Description: "Fully Playable"}}, nil)
	store.On("ListHackCategories", mock.Anything).Return([]models.Category{{CategoryID: 1, Description: "Improvement"}}, nil)
	store.On("ListUtilCategories", mock.Anything).Return([]models.Category{{CategoryID: 1, Description: "Level Editors"}}, nil)
	store.On("ListDocCategories", mock.Anything).Return([]models.Category{{CategoryID: 1, Description: "Assembly"}}, nil)
	store.On("ListHomebrewCategories", mock.Anything).Return([]models.Category{{CategoryID: 1, Description: "Game"}}, nil)
	store.On("ListSkillLevels", mock.Anything).Return([]models.SkillLevel{{LevelID: 1, Description: "Beginner"}}, nil)
	store.On("ListOperatingSystems", mock.Anything).Return([]models.OS{{OSID: 1, Description: "Windows"}}, nil)
}

func TestGetAllMetadataAssemblesPayload(t *testing.T) {
	store := new(MockMetadataStore)
	stubAllLookups(store)
	svc := NewMetadataService(store)

	meta, err := svc.GetAllMetadata(context.Background())
	require.NoError(t, err)
	assert.Len(t, meta.Consoles, 1)
	assert.Len(t, meta.Genres, 1)
	assert.Len(t, meta.PatchStatuses, 1)
	assert.Len(t, meta.HomebrewCategories, 1)
	assert.Len(t, meta.OperatingSystems, 1)
	store.AssertExpectations(t)
}

func TestGetAllMetadataFailsOnAnyLookupError(t *testing.T) {
	store := new(MockMetadataStore)
	store.On("ListConsoles", mock.Anything).Return([]models.Console{}, nil)
	store.On("ListGenres", mock.Anything).Return(nil, errors.New("disk I/O error"))
	svc := NewMetadataService(store)

	_, err := svc.GetAllMetadata(context.Background())
	assert.Error(t, err)
	// A partial payload is worse than none: later lookups must not run.
	store.AssertNotCalled(t, "ListLanguages", mock.Anything)
}
