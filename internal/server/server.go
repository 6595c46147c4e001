package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/taiwoajasa245/quran-api/internal/bookmark"
	"github.com/taiwoajasa245/quran-api/internal/corpus"
	"github.com/taiwoajasa245/quran-api/internal/database"
	"github.com/taiwoajasa245/quran-api/internal/quran"
	"github.com/taiwoajasa245/quran-api/pkg/config"
)

type Server struct {
	port            string
	db              database.Service
	handler         http.Handler
	cfg             *config.Config
	quranService    quran.QuranService
	bookmarkService bookmark.BookmarkService
	seeder          *corpus.Seeder
	logger          *slog.Logger

	cancel context.CancelFunc
	jobs   sync.WaitGroup
}

// NewServer wires repositories and services around the shared store handle.
// seeder may be nil, in which case no background seeding runs.
func NewServer(db database.Service, cfg *config.Config, seeder *corpus.Seeder) *Server {
	s := &Server{
		port:            cfg.Port,
		db:              db,
		cfg:             cfg,
		quranService:    quran.NewQuranService(quran.NewRepository(db)),
		bookmarkService: bookmark.NewBookmarkService(bookmark.NewRepository(db)),
		seeder:          seeder,
		logger:          slog.Default().With("component", "server"),
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs starts the seed retry loop when one is configured.
func (s *Server) StartBackgroundJobs() {
	if s.seeder == nil || s.cfg.SeedRetryInterval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.jobs.Add(1)
	go func() {
		defer s.jobs.Done()
		s.seeder.RunRetries(ctx, s.cfg.SeedRetryInterval)
	}()
}

// StopBackgroundJobs cancels running jobs and waits for them to return.
func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		s.jobs.Wait()
		s.logger.Info("background jobs stopped")
	}
}
