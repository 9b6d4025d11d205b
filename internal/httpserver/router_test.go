package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"romarchive/internal/api/handlers"
	"romarchive/internal/logging"
)

// The route shapes are part of the public contract; archive clients built
// against the original site keep their URLs.
func TestRouterExposesContractPaths(t *testing.T) {
	r := SetupRouter(&handlers.Handlers{}, logging.NewLogger("error"))

	paths := []string{
		"/health",
		"/api/v1/health",
		"/api/v1/games",
		"/api/v1/games/1",
		"/api/v1/games/1/hacks",
		"/api/v1/games/1/translations",
		"/api/v1/hacks",
		"/api/v1/hacks/1",
		"/api/v1/hacks/1/images",
		"/api/v1/translations",
		"/api/v1/translations/1",
		"/api/v1/translations/1/images",
		"/api/v1/utilities",
		"/api/v1/utilities/1",
		"/api/v1/documents",
		"/api/v1/documents/1",
		"/api/v1/homebrew",
		"/api/v1/homebrew/1",
		"/api/v1/metadata",
		"/api/v1/metadata/consoles",
		"/api/v1/metadata/genres",
		"/api/v1/metadata/languages",
		"/api/v1/metadata/patch-statuses",
		"/api/v1/metadata/categories/hacks",
		"/api/v1/metadata/categories/utilities",
		"/api/v1/metadata/categories/documents",
		"/api/v1/metadata/categories/homebrew",
		"/api/v1/metadata/skill-levels",
		"/api/v1/metadata/operating-systems",
		"/api/v1/metadata/licenses",
		"/api/v1/metadata/sections",
		"/api/v1/metadata/patch-hints",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		var match mux.RouteMatch
		assert.True(t, r.Match(req, &match), "no route for GET %s", path)
	}
}

func TestRouterRejectsNonNumericIDs(t *testing.T) {
	r := SetupRouter(&handlers.Handlers{}, logging.NewLogger("error"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/abc", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
