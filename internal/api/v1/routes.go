package v1

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/models"
	"go.uber.org/zap"
)

// Backend is the part of the backend client the JSON API proxies.
type Backend interface {
	FetchPrograms(ctx context.Context) ([]models.Program, error)
	FetchProgram(ctx context.Context, pt models.ProgramType) (*models.Program, error)
	FetchStats(ctx context.Context) (models.Stats, error)
	Ping(ctx context.Context) (string, error)
}

type API struct {
	cfg     *config.Config
	router  *chi.Mux
	backend Backend
	log     *zap.Logger
}

func NewAPI(cfg *config.Config, b Backend, log *zap.Logger) *API {
	api := &API{cfg: cfg, router: chi.NewRouter(), backend: b, log: log}
	api.routes()
	return api
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

func (a *API) routes() {
	catalogH := NewCatalogHandler(a.backend, a.log)

	r := a.router
	r.Route("/programs", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Get("/", catalogH.ListPrograms)
		r.Get("/{program_type}", catalogH.GetProgram)
	})
	r.Get("/stats", catalogH.GetStats)

	r.Route("/health", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Get("/", HealthHandler(a.backend, a.log))
	})
}
