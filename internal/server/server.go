package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	v1 "github.com/tecaikids/website/internal/api/v1"
	"github.com/tecaikids/website/internal/backend"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/service"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/view"
	"github.com/tecaikids/website/internal/web"
	"go.uber.org/zap"
)

type Server struct {
	cfg      *config.Config
	store    *store.Store
	backend  *backend.Client
	content  *content.Content
	renderer *view.Renderer
	log      *zap.Logger
}

func NewServer(cfg *config.Config, st *store.Store, bc *backend.Client, c *content.Content, rnd *view.Renderer, log *zap.Logger) *Server {
	return &Server{cfg: cfg, store: st, backend: bc, content: c, renderer: rnd, log: log}
}

// Handler builds the full route tree: the landing page at / and the JSON
// API under /api/v1.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	catalog := service.NewCatalogService(s.backend, s.log)
	subs := service.NewSubmissionService(s.backend, s.log)
	site := web.NewSite(s.cfg, s.store, s.content, s.renderer, catalog, subs, s.log)
	api := v1.NewAPI(s.cfg, s.backend, s.log)

	r.Mount("/api/v1", api.Routes())
	r.Mount("/", site.Routes())
	return r
}

func (s *Server) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.BindAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Long enough for the page to wait out a slow backend.
		WriteTimeout: s.cfg.BackendTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
