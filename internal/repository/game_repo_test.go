package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

func TestListGamesFilters(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)

	t.Run("platform", func(t *testing.T) {
		page, err := repo.ListGames(context.Background(), models.GameFilter{Platform: int64p(2)}, models.ListParams{Page: 1, PageSize: 50})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "Phantasy Star II", page.Items[0].GameTitle)
	})

	t.Run("genre", func(t *testing.T) {
		page, err := repo.ListGames(context.Background(), models.GameFilter{Genre: int64p(1)}, models.ListParams{Page: 1, PageSize: 50})
		require.NoError(t, err)
		assert.Equal(t, 23, page.Total)
	})

	t.Run("has_hacks", func(t *testing.T) {
		page, err := repo.ListGames(context.Background(), models.GameFilter{HasHacks: boolp(true)}, models.ListParams{Page: 1, PageSize: 50})
		require.NoError(t, err)
		// Game 5 carries hackexist=0.
		assert.Equal(t, 22, page.Total)
	})

	t.Run("has_hacks false is not a predicate", func(t *testing.T) {
		page, err := repo.ListGames(context.Background(), models.GameFilter{HasHacks: boolp(false)}, models.ListParams{Page: 1, PageSize: 50})
		require.NoError(t, err)
		assert.Equal(t, 25, page.Total)
	})

	t.Run("combined", func(t *testing.T) {
		page, err := repo.ListGames(context.Background(), models.GameFilter{Query: "mario", Platform: int64p(1), HasTranslations: boolp(true)}, models.ListParams{Page: 1, PageSize: 50})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
	})
}

func TestListGamesResolvesNames(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)

	page, err := repo.ListGames(context.Background(), models.GameFilter{Platform: int64p(2)}, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	require.NotNil(t, item.PlatformName)
	assert.Equal(t, "Genesis", *item.PlatformName)
	require.NotNil(t, item.GenreName)
	assert.Equal(t, "Role Playing", *item.GenreName)
}

func TestListGamesNullForeignKeys(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)

	page, err := repo.ListGames(context.Background(), models.GameFilter{Query: "orphan"}, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	assert.Nil(t, item.PlatformID)
	assert.Nil(t, item.PlatformName)
	assert.Nil(t, item.GenreName)
	assert.Nil(t, item.JapTitle)
}

func TestGetGame(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedHacks(t, repo)
	seedTranslations(t, repo)

	game, err := repo.GetGame(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Super Mario Quest 01", game.GameTitle)
	assert.Equal(t, 3, game.HackCount)
	assert.Equal(t, 1, game.TranslationCount)
	assert.Equal(t, 0, game.UtilityCount)
	assert.Equal(t, 0, game.DocumentCount)
}

func TestGetGameNotFound(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)

	_, err := repo.GetGame(context.Background(), 999999)
	require.Error(t, err)

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "game", notFound.Entity)
	assert.Equal(t, int64(999999), notFound.ID)
}
