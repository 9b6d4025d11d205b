package handlers

import (
	"context"
	"net/http"
)

// @Summary Get all metadata
// @Description Retrieves the combined lookup payload frontends load once at startup.
// @Tags metadata
// @Produce json
// @Success 200 {object} models.AllMetadata
// @Failure 500 {object} ErrorResponse
// @Router /metadata [get]
func (h *Handlers) GetAllMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Metadata.GetAllMetadata(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, meta)
}

// respondLookup runs one lookup retrieval and writes the result.
func respondLookup[T any](h *Handlers, w http.ResponseWriter, r *http.Request, get func(context.Context) ([]T, error)) {
	items, err := get(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// @Summary List consoles
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Console
// @Failure 500 {object} ErrorResponse
// @Router /metadata/consoles [get]
func (h *Handlers) GetConsoles(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetConsoles)
}

// @Summary List genres
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Genre
// @Failure 500 {object} ErrorResponse
// @Router /metadata/genres [get]
func (h *Handlers) GetGenres(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetGenres)
}

// @Summary List languages
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Language
// @Failure 500 {object} ErrorResponse
// @Router /metadata/languages [get]
func (h *Handlers) GetLanguages(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetLanguages)
}

// @Summary List patch statuses
// @Tags metadata
// @Produce json
// @Success 200 {array} models.PatchStatus
// @Failure 500 {object} ErrorResponse
// @Router /metadata/patch-statuses [get]
func (h *Handlers) GetPatchStatuses(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetPatchStatuses)
}

// @Summary List hack categories
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /metadata/categories/hacks [get]
func (h *Handlers) GetHackCategories(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetHackCategories)
}

// @Summary List utility categories
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /metadata/categories/utilities [get]
func (h *Handlers) GetUtilCategories(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetUtilCategories)
}

// @Summary List document categories
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /metadata/categories/documents [get]
func (h *Handlers) GetDocCategories(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetDocCategories)
}

// @Summary List homebrew categories
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /metadata/categories/homebrew [get]
func (h *Handlers) GetHomebrewCategories(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetHomebrewCategories)
}

// @Summary List skill levels
// @Tags metadata
// @Produce json
// @Success 200 {array} models.SkillLevel
// @Failure 500 {object} ErrorResponse
// @Router /metadata/skill-levels [get]
func (h *Handlers) GetSkillLevels(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetSkillLevels)
}

// @Summary List operating systems
// @Tags metadata
// @Produce json
// @Success 200 {array} models.OS
// @Failure 500 {object} ErrorResponse
// @Router /metadata/operating-systems [get]
func (h *Handlers) GetOperatingSystems(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetOperatingSystems)
}

// @Summary List licenses
// @Tags metadata
// @Produce json
// @Success 200 {array} models.License
// @Failure 500 {object} ErrorResponse
// @Router /metadata/licenses [get]
func (h *Handlers) GetLicenses(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetLicenses)
}

// @Summary List site sections
// @Tags metadata
// @Produce json
// @Success 200 {array} models.Section
// @Failure 500 {object} ErrorResponse
// @Router /metadata/sections [get]
func (h *Handlers) GetSections(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetSections)
}

// @Summary List patching hints
// @Tags metadata
// @Produce json
// @Success 200 {array} models.PatchHint
// @Failure 500 {object} ErrorResponse
// @Router /metadata/patch-hints [get]
func (h *Handlers) GetPatchHints(w http.ResponseWriter, r *http.Request) {
	respondLookup(h, w, r, h.Metadata.GetPatchHints)
}
