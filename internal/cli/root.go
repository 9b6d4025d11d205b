// Package cli wires configuration, the repository and the HTTP server
// behind a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"romarchive/internal/api/handlers"
	"romarchive/internal/config"
	"romarchive/internal/httpserver"
	"romarchive/internal/logging"
	"romarchive/internal/repository"
	"romarchive/internal/services"
)

// Version is stamped by the release build.
var Version = "1.0.0"

var (
	// Global config object populated by flags/env/file.
	cfg *config.Config
	log *logrus.Logger

	// Flags
	cfgFile  string
	port     int
	logLevel string
	dbPath   string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "romarchive",
	Short: "ROM hacking archive browsing API",
	Long:  `A read-only REST API over a static SQLite archive of games, ROM hacks, fan translations, utilities, documents and homebrew.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: ROMARCHIVE_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: ROMARCHIVE_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite archive file. (Env: ROMARCHIVE_DB_PATH)")

	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: ROMARCHIVE_PORT)")
}

// initializeConfig loads the config file and layers env vars and CLI flags
// on top, flags winning.
func initializeConfig() error {
	if envPath := os.Getenv("ROMARCHIVE_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file: rely on defaults, env and flags.
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log = logging.NewLogger(cfg.Logging.Level)
	return nil
}

func applyOverrides(c *config.Config) {
	// Environment variables first.
	if v := os.Getenv("ROMARCHIVE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ROMARCHIVE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROMARCHIVE_DB_PATH"); v != "" {
		c.Database.Path = v
	}

	// CLI flags take precedence.
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
}

// runServer starts the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.Open(cfg.Database.Path, true, log)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer repo.Close()

	h := handlers.NewHandlers(
		services.NewGameService(repo),
		services.NewHackService(repo),
		services.NewTranslationService(repo),
		services.NewUtilityService(repo),
		services.NewDocumentService(repo),
		services.NewHomebrewService(repo),
		services.NewMetadataService(repo),
		services.NewHealthService(repo, Version, log),
		log,
	)

	router := httpserver.SetupRouter(h, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    addr,
			"archive": cfg.Database.Path,
			"version": Version,
		}).Info("starting archive API server")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.WithField("signal", sig.String()).Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
