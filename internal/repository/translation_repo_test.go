package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

func TestListTranslationsDefaultSortNewestFirst(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	page, err := repo.ListTranslations(context.Background(), models.TranslationFilter{}, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	assert.Equal(t, int64(4), page.Items[0].TransKey)
	assert.Equal(t, int64(1), page.Items[3].TransKey)
}

func TestListTranslationsBogusSortFallsBack(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	page, err := repo.ListTranslations(context.Background(), models.TranslationFilter{}, models.ListParams{Page: 1, PageSize: 10, SortBy: "bogus_field"})
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	// Same order as the default: created descending.
	assert.Equal(t, int64(4), page.Items[0].TransKey)
}

func TestListTranslationsSearchMatchesGameTitle(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	page, err := repo.ListTranslations(context.Background(), models.TranslationFilter{Query: "phantasy"}, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	// The count query must carry the gamedata join or total and items drift.
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 3)
	for _, item := range page.Items {
		require.NotNil(t, item.GameTitle)
		assert.Equal(t, "Phantasy Star II", *item.GameTitle)
	}
}

func TestListTranslationsFilters(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	t.Run("language", func(t *testing.T) {
		page, err := repo.ListTranslations(context.Background(), models.TranslationFilter{Language: int64p(2)}, models.ListParams{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("status", func(t *testing.T) {
		page, err := repo.ListTranslations(context.Background(), models.TranslationFilter{Status: int64p(2)}, models.ListParams{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
	})
}

func TestGetTranslation(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	trans, err := repo.GetTranslation(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, trans.LanguageName)
	assert.Equal(t, "English", *trans.LanguageName)
	require.NotNil(t, trans.StatusName)
	assert.Equal(t, "Fully Playable", *trans.StatusName)
	assert.Equal(t, 1, trans.ImageCount)
}

func TestGetTranslationNotFound(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)

	_, err := repo.GetTranslation(context.Background(), 424242)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "translation", notFound.Entity)
}

func TestListTranslationImagesMissingParent(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	seedGames(t, repo)
	seedTranslations(t, repo)

	_, err := repo.ListTranslationImages(context.Background(), 424242)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "translation", notFound.Entity)
}
