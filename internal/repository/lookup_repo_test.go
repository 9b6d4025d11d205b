package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListConsolesOrderedByName(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)

	consoles, err := repo.ListConsoles(context.Background())
	require.NoError(t, err)
	require.Len(t, consoles, 3)
	assert.Equal(t, "Genesis", consoles[0].Description)
	assert.Equal(t, "NES", consoles[1].Description)
	assert.Equal(t, "SNES", consoles[2].Description)
	require.NotNil(t, consoles[0].Manufacturer)
	assert.Equal(t, "Sega", *consoles[0].Manufacturer)
}

func TestListPatchStatusesOrderedByID(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)

	statuses, err := repo.ListPatchStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	// Status ids encode a progression, alphabetical order would scramble it.
	assert.Equal(t, int64(1), statuses[0].StatusID)
	assert.Equal(t, "Unfinished", statuses[0].Description)
	assert.Equal(t, int64(2), statuses[1].StatusID)
}

func TestListSkillLevelsOrderedByID(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)

	levels, err := repo.ListSkillLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "Beginner", levels[0].Description)
	assert.Equal(t, "Advanced", levels[1].Description)
}

func TestLookupCaching(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)

	first, err := repo.ListGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	// A row added after the first read must not show up: lookups are pinned
	// for the process lifetime.
	mustExec(t, repo, "INSERT INTO genres (genreid, description) VALUES (50, 'Puzzle')")

	second, err := repo.ListGenres(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestLookupTablesRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	seedLookups(t, repo)
	ctx := context.Background()

	languages, err := repo.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Len(t, languages, 2)

	hackCats, err := repo.ListHackCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, hackCats, 2)

	utilCats, err := repo.ListUtilCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, utilCats, 1)

	docCats, err := repo.ListDocCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, docCats, 1)

	hbCats, err := repo.ListHomebrewCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, hbCats, 1)

	oses, err := repo.ListOperatingSystems(ctx)
	require.NoError(t, err)
	require.Len(t, oses, 2)
	assert.Equal(t, "Linux", oses[0].Description)

	licenses, err := repo.ListLicenses(ctx)
	require.NoError(t, err)
	assert.Len(t, licenses, 2)

	sections, err := repo.ListSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Hacks", sections[0].Description)

	hints, err := repo.ListPatchHints(ctx)
	require.NoError(t, err)
	require.Len(t, hints, 2)
	assert.Equal(t, int64(1), hints[0].HintID)
}
