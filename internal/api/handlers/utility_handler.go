package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List utilities
// @Description Retrieves a paginated list of utilities with resolved category, console, game and OS names.
// @Tags utilities
// @Produce json
// @Param q query string false "Case-insensitive substring match against the utility title"
// @Param category query int false "Utility category ID"
// @Param console query int false "Console ID"
// @Param os query int false "Operating system ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default title)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'asc')"
// @Success 200 {object} models.Paginated[models.UtilityListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /utilities [get]
func (h *Handlers) ListUtilities(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.UtilityFilter{Query: r.URL.Query().Get("q")}
	if filter.Category, err = parseOptionalInt64(r, "category"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Console, err = parseOptionalInt64(r, "console"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.OS, err = parseOptionalInt64(r, "os"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Utilities.ListUtilities(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a utility
// @Description Retrieves one utility with resolved names and license/source details.
// @Tags utilities
// @Produce json
// @Param id path int true "Utility ID"
// @Success 200 {object} models.UtilityDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Utility not found"
// @Failure 500 {object} ErrorResponse
// @Router /utilities/{id} [get]
func (h *Handlers) GetUtility(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	util, err := h.Utilities.GetUtility(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, util)
}
