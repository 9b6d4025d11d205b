package httpserver

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"romarchive/internal/api/handlers"
)

// SetupRouter configures the main router and its sub-routers. The whole API
// is read-only, so every route is a GET and nothing sits behind auth.
func SetupRouter(h *handlers.Handlers, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(log))

	// Health lives at the root for load balancers and is mirrored under
	// the versioned prefix for API clients.
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")

	addGameRoutes(api, h)
	addHackRoutes(api, h)
	addTranslationRoutes(api, h)
	addUtilityRoutes(api, h)
	addDocumentRoutes(api, h)
	addHomebrewRoutes(api, h)
	addMetadataRoutes(api, h)

	return r
}

// addGameRoutes configures the game browsing routes.
func addGameRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/games", h.ListGames).Methods("GET")
	r.HandleFunc("/games/{id:[0-9]+}", h.GetGame).Methods("GET")
	r.HandleFunc("/games/{id:[0-9]+}/hacks", h.ListGameHacks).Methods("GET")
	r.HandleFunc("/games/{id:[0-9]+}/translations", h.ListGameTranslations).Methods("GET")
}

// addHackRoutes configures the hack browsing routes.
func addHackRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/hacks", h.ListHacks).Methods("GET")
	r.HandleFunc("/hacks/{id:[0-9]+}", h.GetHack).Methods("GET")
	r.HandleFunc("/hacks/{id:[0-9]+}/images", h.ListHackImages).Methods("GET")
}

// addTranslationRoutes configures the translation browsing routes.
func addTranslationRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/translations", h.ListTranslations).Methods("GET")
	r.HandleFunc("/translations/{id:[0-9]+}", h.GetTranslation).Methods("GET")
	r.HandleFunc("/translations/{id:[0-9]+}/images", h.ListTranslationImages).Methods("GET")
}

// addUtilityRoutes configures the utility browsing routes.
func addUtilityRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/utilities", h.ListUtilities).Methods("GET")
	r.HandleFunc("/utilities/{id:[0-9]+}", h.GetUtility).Methods("GET")
}

// addDocumentRoutes configures the document browsing routes.
func addDocumentRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/documents", h.ListDocuments).Methods("GET")
	r.HandleFunc("/documents/{id:[0-9]+}", h.GetDocument).Methods("GET")
}

// addHomebrewRoutes configures the homebrew browsing routes.
func addHomebrewRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/homebrew", h.ListHomebrew).Methods("GET")
	r.HandleFunc("/homebrew/{id:[0-9]+}", h.GetHomebrew).Methods("GET")
}

// addMetadataRoutes configures the lookup table routes.
func addMetadataRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/metadata", h.GetAllMetadata).Methods("GET")
	r.HandleFunc("/metadata/consoles", h.GetConsoles).Methods("GET")
	r.HandleFunc("/metadata/genres", h.GetGenres).Methods("GET")
	r.HandleFunc("/metadata/languages", h.GetLanguages).Methods("GET")
	r.HandleFunc("/metadata/patch-statuses", h.GetPatchStatuses).Methods("GET")
	r.HandleFunc("/metadata/categories/hacks", h.GetHackCategories).Methods("GET")
	r.HandleFunc("/metadata/categories/utilities", h.GetUtilCategories).Methods("GET")
	r.HandleFunc("/metadata/categories/documents", h.GetDocCategories).Methods("GET")
	r.HandleFunc("/metadata/categories/homebrew", h.GetHomebrewCategories).Methods("GET")
	r.HandleFunc("/metadata/skill-levels", h.GetSkillLevels).Methods("GET")
	r.HandleFunc("/metadata/operating-systems", h.GetOperatingSystems).Methods("GET")
	r.HandleFunc("/metadata/licenses", h.GetLicenses).Methods("GET")
	r.HandleFunc("/metadata/sections", h.GetSections).Methods("GET")
	r.HandleFunc("/metadata/patch-hints", h.GetPatchHints).Methods("GET")
}
