package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List games
// @Description Retrieves a paginated list of games with resolved platform and genre names.
// @Tags games
// @Produce json
// @Param q query string false "Case-insensitive substring match against the game title"
// @Param platform query int false "Platform (console) ID"
// @Param genre query int false "Genre ID"
// @Param has_hacks query bool false "Only games with at least one hack"
// @Param has_translations query bool false "Only games with at least one translation"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default gametitle)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'asc')"
// @Success 200 {object} models.Paginated[models.GameListItem]
// @Failure 400 {object} ErrorResponse "Invalid pagination or filter value"
// @Failure 500 {object} ErrorResponse
// @Router /games [get]
func (h *Handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.GameFilter{Query: r.URL.Query().Get("q")}
	if filter.Platform, err = parseOptionalInt64(r, "platform"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Genre, err = parseOptionalInt64(r, "genre"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.HasHacks, err = parseOptionalBool(r, "has_hacks"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.HasTranslations, err = parseOptionalBool(r, "has_translations"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Games.ListGames(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a game
// @Description Retrieves one game with resolved names and live hack/translation counts.
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.GameDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 500 {object} ErrorResponse
// @Router /games/{id} [get]
func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	game, err := h.Games.GetGame(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, game)
}

// @Summary List hacks of a game
// @Description Retrieves the hacks attached to one game. An unknown game yields an empty page.
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Success 200 {object} models.Paginated[models.HackListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games/{id}/hacks [get]
func (h *Handlers) ListGameHacks(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Games.ListGameHacks(r.Context(), id, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary List translations of a game
// @Description Retrieves the translations attached to one game. An unknown game yields an empty page.
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Success 200 {object} models.Paginated[models.TranslationListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games/{id}/translations [get]
func (h *Handlers) ListGameTranslations(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Games.ListGameTranslations(r.Context(), id, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}
