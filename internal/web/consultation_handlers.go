package web

import (
	"errors"
	"net/http"

	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/store"
	"go.uber.org/zap"
)

type ConsultationHandler struct {
	site *Site
}

func NewConsultationHandler(s *Site) *ConsultationHandler {
	return &ConsultationHandler{site: s}
}

// POST /consultation
// action=update stores the posted fields (or a single field/value pair);
// action=submit stores them and sends the draft to the backend.
func (h *ConsultationHandler) Post(w http.ResponseWriter, r *http.Request) {
	s := h.site
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	v := store.GetVisitFromCtx(r.Context())

	draft, err := applyConsultation(v.Consultation(), r)
	if errors.Is(err, forms.ErrUnknownField) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v.SetConsultation(draft)

	switch r.PostFormValue("action") {
	case "update":
	case "submit":
		h.submit(r, v, draft)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	s.finish(w, r, v, formConsultation)
}

func (h *ConsultationHandler) submit(r *http.Request, v *store.Visit, draft forms.ConsultationDraft) {
	s := h.site
	if !draft.CanSubmit() {
		v.AddNotification(forms.Incomplete("consultation request", draft.Missing()))
		return
	}
	release, ok := s.store.Gate.TryAcquire(v.ID, formConsultation)
	if !ok {
		v.AddNotification(forms.Busy("consultation request"))
		return
	}
	defer release()

	n, sent := s.submissions.SubmitConsultation(r.Context(), draft)
	release()
	if sent {
		v.SetConsultation(forms.ConsultationDraft{})
	}
	v.AddNotification(n)
	s.log.Debug("consultation submitted", zap.String("visitor", v.ID), zap.Bool("sent", sent))
}

func applyConsultation(d forms.ConsultationDraft, r *http.Request) (forms.ConsultationDraft, error) {
	if field := r.PostFormValue("field"); field != "" {
		return forms.UpdateConsultation(d, field, r.PostFormValue("value"))
	}
	var err error
	for _, f := range forms.ConsultationFields {
		vals, ok := r.PostForm[f]
		if !ok || len(vals) == 0 {
			continue
		}
		if d, err = forms.UpdateConsultation(d, f, vals[0]); err != nil {
			return d, err
		}
	}
	return d, nil
}
