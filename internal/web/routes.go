// Package web serves the landing page and handles its two forms.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/service"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/view"
	"go.uber.org/zap"
)

const (
	formConsultation = "consultation"
	formEnrollment   = "enrollment"
)

type Site struct {
	cfg         *config.Config
	router      *chi.Mux
	store       *store.Store
	content     *content.Content
	renderer    *view.Renderer
	catalog     *service.CatalogService
	submissions *service.SubmissionService
	log         *zap.Logger
}

func NewSite(cfg *config.Config, st *store.Store, c *content.Content, rnd *view.Renderer,
	catalog *service.CatalogService, subs *service.SubmissionService, log *zap.Logger) *Site {
	s := &Site{
		cfg:         cfg,
		router:      chi.NewRouter(),
		store:       st,
		content:     c,
		renderer:    rnd,
		catalog:     catalog,
		submissions: subs,
		log:         log,
	}
	s.routes()
	return s
}

func (s *Site) Routes() *chi.Mux {
	return s.router
}

func (s *Site) routes() {
	homeH := NewHomeHandler(s)
	consultH := NewConsultationHandler(s)
	enrollH := NewEnrollmentHandler(s)

	r := s.router
	r.Use(s.store.VisitMiddleware)
	r.Get("/", homeH.Home)
	r.Post("/consultation", consultH.Post)
	r.Post("/enrollment", enrollH.Post)
}

// finish saves the visitor session and redirects to the section anchor so a
// reload never re-posts the form.
func (s *Site) finish(w http.ResponseWriter, r *http.Request, v *store.Visit, anchor string) {
	if err := v.Save(r, w); err != nil {
		s.log.Error("save session", zap.Error(err), zap.String("visitor", v.ID))
	}
	http.Redirect(w, r, "/#"+anchor, http.StatusSeeOther)
}
