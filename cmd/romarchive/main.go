package main

import (
	"romarchive/internal/cli"

	// Import docs for Swagger
	_ "romarchive/docs"
)

// @title ROM Archive API
// @version 1.0.0
// @description Read-only browsing API over a static SQLite archive of games, ROM hacks, fan translations, utilities, documents and homebrew.
// @BasePath /api/v1
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
