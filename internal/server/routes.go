package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taiwoajasa245/quran-api/docs"
	"github.com/taiwoajasa245/quran-api/internal/bookmark"
	"github.com/taiwoajasa245/quran-api/internal/quran"
	"github.com/taiwoajasa245/quran-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.HealthHandler)
		s.loadQuranRoutes(r)
		s.loadBookmarkRoutes(r)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			response.Error(w, http.StatusNotFound, "Not found")
		})
	})

	if s.cfg.StaticDir != "" {
		spa := spaHandler{dir: s.cfg.StaticDir}
		r.Get("/*", spa.ServeHTTP)
	} else {
		r.Get("/", s.ServerIsWorking)
	}

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Quran API",
		"docs":    "/swagger/index.html",
	})
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Store connection statistics plus whether the corpus has been loaded.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health()
	if stats["status"] != "up" {
		response.JSON(w, http.StatusServiceUnavailable, stats)
		return
	}

	seeded, count, err := s.quranService.IsSeeded(r.Context())
	if err != nil {
		s.logger.Error("health check could not count ayahs", "error", err)
		stats["seeded"] = "unknown"
	} else {
		stats["seeded"] = strconv.FormatBool(seeded)
		stats["ayahs"] = strconv.Itoa(count)
	}

	response.JSON(w, http.StatusOK, stats)
}

func (s *Server) loadQuranRoutes(router chi.Router) {
	quranHandler := quran.NewQuranHandler(s.quranService)

	router.Get("/quran", quranHandler.GetAyahsHandler)
	router.Get("/surahs", quranHandler.GetSurahsHandler)
	router.Get("/search", quranHandler.SearchHandler)
}

func (s *Server) loadBookmarkRoutes(router chi.Router) {
	bookmarkHandler := bookmark.NewBookmarkHandler(s.bookmarkService)

	router.Get("/bookmarks", bookmarkHandler.ListBookmarksHandler)
	router.Post("/bookmarks", bookmarkHandler.CreateBookmarkHandler)
	router.Delete("/bookmarks/{id}", bookmarkHandler.DeleteBookmarkHandler)
}

// spaHandler serves the built client. Paths that do not name a file fall
// back to index.html so client-side routes survive a reload.
type spaHandler struct {
	dir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	if !strings.HasPrefix(name, filepath.Clean(h.dir)) {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}

	http.ServeFile(w, r, name)
}
