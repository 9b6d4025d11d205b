// Package handlers implements the HTTP layer of the archive browsing API.
package handlers

import (
	"github.com/sirupsen/logrus"

	"romarchive/internal/services"
)

// Handlers holds the shared dependencies of the API handlers. Handlers
// depend on the service interfaces, not the concrete implementations.
type Handlers struct {
	Games        services.GameService
	Hacks        services.HackService
	Translations services.TranslationService
	Utilities    services.UtilityService
	Documents    services.DocumentService
	Homebrew     services.HomebrewService
	Metadata     services.MetadataService
	Health       services.HealthService

	Log *logrus.Logger
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	games services.GameService,
	hacks services.HackService,
	translations services.TranslationService,
	utilities services.UtilityService,
	documents services.DocumentService,
	homebrew services.HomebrewService,
	metadata services.MetadataService,
	health services.HealthService,
	log *logrus.Logger,
) *Handlers {
	return &Handlers{
		Games:        games,
		Hacks:        hacks,
		Translations: translations,
		Utilities:    utilities,
		Documents:    documents,
		Homebrew:     homebrew,
		Metadata:     metadata,
		Health:       health,
		Log:          log,
	}
}
