package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List translations
// @Description Retrieves a paginated list of translations with resolved game, console, language and status names.
// @Tags translations
// @Produce json
// @Param q query string false "Case-insensitive substring match against the translated game's title"
// @Param game query int false "Game ID"
// @Param console query int false "Console ID"
// @Param language query int false "Language ID"
// @Param status query int false "Patch status ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default created)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'desc')"
// @Success 200 {object} models.Paginated[models.TranslationListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /translations [get]
func (h *Handlers) ListTranslations(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.TranslationFilter{Query: r.URL.Query().Get("q")}
	if filter.Game, err = parseOptionalInt64(r, "game"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Console, err = parseOptionalInt64(r, "console"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Language, err = parseOptionalInt64(r, "language"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Status, err = parseOptionalInt64(r, "status"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Translations.ListTranslations(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a translation
// @Description Retrieves one translation with resolved names, patch hint text and screenshot count.
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} models.TranslationDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Translation not found"
// @Failure 500 {object} ErrorResponse
// @Router /translations/{id} [get]
func (h *Handlers) GetTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	trans, err := h.Translations.GetTranslation(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, trans)
}

// @Summary List screenshots of a translation
// @Description Retrieves every screenshot attached to a translation as a flat list.
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {array} models.TransImage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Translation not found"
// @Failure 500 {object} ErrorResponse
// @Router /translations/{id}/images [get]
func (h *Handlers) ListTranslationImages(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	images, err := h.Translations.ListTranslationImages(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}
