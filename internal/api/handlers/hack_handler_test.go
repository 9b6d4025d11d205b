package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

func TestListHacksPassesFilter(t *testing.T) {
	hacks := new(MockHackService)
	params := models.ListParams{Page: 1, PageSize: 50}
	hacks.On("ListHacks", mock.Anything, mock.MatchedBy(func(f models.HackFilter) bool {
		return f.Game != nil && *f.Game == 5 && f.Console == nil
	}), params).Return(models.NewPaginated([]models.HackListItem{}, 0, params), nil)

	rec := serveRequest(testHandlers(nil, hacks, nil), http.MethodGet, "/api/v1/hacks?game=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	hacks.AssertExpectations(t)
}

func TestGetHackNotFound(t *testing.T) {
	hacks := new(MockHackService)
	hacks.On("GetHack", mock.Anything, int64(999999)).Return(nil, shared.NewNotFound("hack", 999999))

	rec := serveRequest(testHandlers(nil, hacks, nil), http.MethodGet, "/api/v1/hacks/999999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListHackImagesFlatList(t *testing.T) {
	hacks := new(MockHackService)
	caption := "Title screen"
	hacks.On("ListHackImages", mock.Anything, int64(1)).Return([]models.HackImage{
		{ImageID: 1, Filename: "shot1.png", Caption: &caption},
		{ImageID: 2, Filename: "shot2.png"},
	}, nil)

	rec := serveRequest(testHandlers(nil, hacks, nil), http.MethodGet, "/api/v1/hacks/1/images")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.HackImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "shot1.png", got[0].Filename)
	assert.Nil(t, got[1].Caption)
}

func TestListHackImagesMissingParent(t *testing.T) {
	hacks := new(MockHackService)
	hacks.On("ListHackImages", mock.Anything, int64(999999)).Return(nil, shared.NewNotFound("hack", 999999))

	rec := serveRequest(testHandlers(nil, hacks, nil), http.MethodGet, "/api/v1/hacks/999999/images")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
