package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/taiwoajasa245/quran-api/docs"
	"github.com/taiwoajasa245/quran-api/internal/corpus"
	"github.com/taiwoajasa245/quran-api/internal/database"
	"github.com/taiwoajasa245/quran-api/internal/quran"
	"github.com/taiwoajasa245/quran-api/internal/server"
	"github.com/taiwoajasa245/quran-api/pkg/config"
)

// @title        Quran API
// @version      1.0
// @description  Read, search and bookmark the Quran in Arabic with three English translations.
// @BasePath     /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))
	docs.SwaggerInfo.Host = cfg.SwaggerHost

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to open database", "component", "store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	client := corpus.NewClient(cfg.CorpusAPIURL,
		corpus.WithTimeout(cfg.CorpusFetchTimeout),
		corpus.WithRetries(cfg.CorpusFetchRetries),
	)
	seeder := corpus.NewSeeder(quran.NewRepository(db), client)

	// A failed seed is logged inside Seed; the API still starts and serves
	// empty results until a later start or retry succeeds.
	if outcome, err := seeder.Seed(context.Background()); err == nil {
		slog.Info("corpus ready", "component", "seed", "outcome", outcome.String())
	}

	srv := server.NewServer(db, cfg, seeder)
	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.StartBackgroundJobs()

	go func() {
		printBanner(cfg)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "component", "server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down gracefully", "component", "server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.StopBackgroundJobs()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "component", "server", "error", err)
	}

	slog.Info("server exiting", "component", "server")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func printBanner(cfg *config.Config) {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)

	cyan.Println("\n    Quran API")
	gray.Printf("    env: %s\n\n", cfg.AppEnv)

	green.Print("    ▶ ")
	fmt.Printf("HTTP:    :%s\n", cfg.Port)
	green.Print("    ▶ ")
	fmt.Printf("Store:   %s\n", cfg.DBDriver)
	if cfg.StaticDir != "" {
		green.Print("    ▶ ")
		fmt.Printf("Client:  %s\n", cfg.StaticDir)
	}
	green.Print("    ▶ ")
	fmt.Printf("Docs:    http://%s/swagger/index.html\n\n", cfg.SwaggerHost)
}
