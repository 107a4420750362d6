package web

import (
	"net/http"

	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/view"
	"go.uber.org/zap"
)

type HomeHandler struct {
	site *Site
}

func NewHomeHandler(s *Site) *HomeHandler {
	return &HomeHandler{site: s}
}

// GET /
// The loading placeholder is flushed first; the sections follow once both
// catalog fetches have finished.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	s := h.site
	ctx := r.Context()
	v := store.GetVisitFromCtx(ctx)

	notes := v.Notifications()
	wiz := v.Wizard()
	draft := v.Consultation()
	// A fresh session holds nothing but its id, so it is not written until a
	// form post gives it something to keep.
	if !v.Fresh() {
		if err := v.Save(r, w); err != nil {
			s.log.Error("save session", zap.Error(err), zap.String("visitor", v.ID))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.renderer.Loading(w, s.content.Brand); err != nil {
		s.log.Error("render loading", zap.Error(err))
		return
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	cat := s.catalog.Load(ctx)

	enrollPrograms := cat.Programs
	if pt := wiz.Program(); pt != "" {
		if p, ok := s.catalog.Program(ctx, cat.Programs, pt); ok {
			enrollPrograms = withProgram(cat.Programs, *p)
		}
	}

	page := view.Home(s.content, cat.Programs, cat.Stats,
		view.EnrollmentSection(s.content, wiz, enrollPrograms, s.store.Gate.InFlight(v.ID, formEnrollment)),
		view.ConsultationSection(s.content, draft, s.store.Gate.InFlight(v.ID, formConsultation)),
		notes)
	if err := s.renderer.Home(w, page); err != nil {
		s.log.Error("render home", zap.Error(err))
	}
}

// withProgram returns programs with p included, leaving the input untouched.
func withProgram(programs []models.Program, p models.Program) []models.Program {
	for _, existing := range programs {
		if existing.ProgramType == p.ProgramType {
			return programs
		}
	}
	out := make([]models.Program, 0, len(programs)+1)
	out = append(out, programs...)
	return append(out, p)
}
