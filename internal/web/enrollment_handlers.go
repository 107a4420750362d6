package web

import (
	"errors"
	"net/http"

	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/wizard"
	"go.uber.org/zap"
)

type EnrollmentHandler struct {
	site *Site
}

func NewEnrollmentHandler(s *Site) *EnrollmentHandler {
	return &EnrollmentHandler{site: s}
}

// POST /enrollment
// Every wizard transition is one action. Contact fields posted from the
// details step are kept whichever action is taken.
func (h *EnrollmentHandler) Post(w http.ResponseWriter, r *http.Request) {
	s := h.site
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	v := store.GetVisitFromCtx(r.Context())
	wiz := v.Wizard()

	if err := applyContact(wiz, r); errors.Is(err, forms.ErrUnknownField) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	switch action := r.PostFormValue("action"); action {
	case "select_program":
		err = wiz.SelectProgram(models.ProgramType(r.PostFormValue("program_type")))
	case "next":
		err = wiz.Next()
	case "back":
		err = wiz.Back()
	case "select_plan":
		err = wiz.SelectPlan(models.PaymentPlan(r.PostFormValue("payment_plan")))
	case "select_method":
		err = wiz.SelectMethod(models.PaymentMethod(r.PostFormValue("payment_method")))
	case "update":
	case "submit":
		h.submit(r, v, wiz)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	if err != nil {
		// Stale or hand-crafted posts leave the wizard where it was.
		s.log.Debug("enrollment transition refused", zap.Error(err), zap.String("visitor", v.ID),
			zap.Stringer("step", wiz.Step()))
	}
	v.SetWizard(wiz)
	s.finish(w, r, v, formEnrollment)
}

func (h *EnrollmentHandler) submit(r *http.Request, v *store.Visit, wiz *wizard.Wizard) {
	s := h.site
	if wiz.Step() != wizard.StepDetails {
		return
	}
	release, ok := s.store.Gate.TryAcquire(v.ID, formEnrollment)
	if !ok {
		v.AddNotification(forms.Busy("enrollment"))
		return
	}
	defer release()

	n, sent := s.submissions.SubmitEnrollment(r.Context(), wiz)
	release()
	if sent {
		wiz.Reset()
	}
	v.AddNotification(n)
}

// applyContact records any contact fields in the post. It only has an
// effect on the details step.
func applyContact(wiz *wizard.Wizard, r *http.Request) error {
	if wiz.Step() != wizard.StepDetails {
		return nil
	}
	for _, f := range forms.ContactFields {
		vals, ok := r.PostForm[f]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := wiz.UpdateContact(f, vals[0]); err != nil {
			return err
		}
	}
	return nil
}
