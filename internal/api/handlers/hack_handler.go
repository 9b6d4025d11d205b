package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List hacks
// @Description Retrieves a paginated list of ROM hacks with resolved game, console and category names.
// @Tags hacks
// @Produce json
// @Param q query string false "Case-insensitive substring match against the hack title"
// @Param game query int false "Game ID"
// @Param console query int false "Console ID"
// @Param category query int false "Hack category ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default hacktitle)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'asc')"
// @Success 200 {object} models.Paginated[models.HackListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hacks [get]
func (h *Handlers) ListHacks(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.HackFilter{Query: r.URL.Query().Get("q")}
	if filter.Game, err = parseOptionalInt64(r, "game"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Console, err = parseOptionalInt64(r, "console"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Category, err = parseOptionalInt64(r, "category"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Hacks.ListHacks(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a hack
// @Description Retrieves one hack with resolved names, patch hint text and screenshot count.
// @Tags hacks
// @Produce json
// @Param id path int true "Hack ID"
// @Success 200 {object} models.HackDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Hack not found"
// @Failure 500 {object} ErrorResponse
// @Router /hacks/{id} [get]
func (h *Handlers) GetHack(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	hack, err := h.Hacks.GetHack(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hack)
}

// @Summary List screenshots of a hack
// @Description Retrieves every screenshot attached to a hack as a flat list.
// @Tags hacks
// @Produce json
// @Param id path int true "Hack ID"
// @Success 200 {array} models.HackImage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Hack not found"
// @Failure 500 {object} ErrorResponse
// @Router /hacks/{id}/images [get]
func (h *Handlers) ListHackImages(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	images, err := h.Hacks.ListHackImages(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}
