package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List homebrew projects
// @Description Retrieves a paginated list of homebrew projects with resolved category and platform names.
// @Tags homebrew
// @Produce json
// @Param q query string false "Case-insensitive substring match against the project title"
// @Param category query int false "Homebrew category ID"
// @Param platform query int false "Platform (console) ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default title)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'asc')"
// @Success 200 {object} models.Paginated[models.HomebrewListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /homebrew [get]
func (h *Handlers) ListHomebrew(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.HomebrewFilter{Query: r.URL.Query().Get("q")}
	if filter.Category, err = parseOptionalInt64(r, "category"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Platform, err = parseOptionalInt64(r, "platform"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Homebrew.ListHomebrew(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a homebrew project
// @Description Retrieves one homebrew project with content-type flags and source availability.
// @Tags homebrew
// @Produce json
// @Param id path int true "Homebrew ID"
// @Success 200 {object} models.HomebrewDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Homebrew project not found"
// @Failure 500 {object} ErrorResponse
// @Router /homebrew/{id} [get]
func (h *Handlers) GetHomebrew(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	hb, err := h.Homebrew.GetHomebrew(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hb)
}
