package handlers

import (
	"net/http"

	"romarchive/internal/models"
)

// @Summary List documents
// @Description Retrieves a paginated list of documents with resolved category, console, game and skill-level names.
// @Tags documents
// @Produce json
// @Param q query string false "Case-insensitive substring match against the document title"
// @Param category query int false "Document category ID"
// @Param console query int false "Console ID"
// @Param skill_level query int false "Skill level ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 200)"
// @Param sort_by query string false "Sort column (default title)"
// @Param sort_order query string false "Sort direction ('asc' or 'desc', default 'asc')"
// @Success 200 {object} models.Paginated[models.DocumentListItem]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents [get]
func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := models.DocumentFilter{Query: r.URL.Query().Get("q")}
	if filter.Category, err = parseOptionalInt64(r, "category"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Console, err = parseOptionalInt64(r, "console"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.SkillLevel, err = parseOptionalInt64(r, "skill_level"); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Documents.ListDocuments(r.Context(), filter, params)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// @Summary Get a document
// @Description Retrieves one document with resolved names.
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} models.DocumentDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse
// @Router /documents/{id} [get]
func (h *Handlers) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.Documents.GetDocument(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}
