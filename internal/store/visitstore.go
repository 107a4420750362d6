package store

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/utils"
	"github.com/tecaikids/website/internal/wizard"
)

// Visit is one visitor's session for the duration of a request.
type Visit struct {
	ID   string
	sess *sessions.Session
}

// Visit loads the visitor session for r. A missing, expired or tampered
// cookie yields a fresh session rather than an error.
func (s *Store) Visit(r *http.Request) *Visit {
	sess, _ := s.Sessions.Get(r, sessionName)
	if sess == nil {
		sess = sessions.NewSession(s.Sessions, sessionName)
		sess.Options = &sessions.Options{Path: "/", HttpOnly: true}
		sess.IsNew = true
	}
	id, _ := sess.Values[keyVisitor].(string)
	if id == "" {
		id = utils.GenerateID()
		sess.Values[keyVisitor] = id
	}
	return &Visit{ID: id, sess: sess}
}

// Fresh reports whether the visitor arrived without a usable session.
func (v *Visit) Fresh() bool {
	return v.sess.IsNew
}

func (v *Visit) Save(r *http.Request, w http.ResponseWriter) error {
	return v.sess.Save(r, w)
}

func (v *Visit) Consultation() forms.ConsultationDraft {
	d, _ := v.sess.Values[keyConsultation].(forms.ConsultationDraft)
	return d
}

func (v *Visit) SetConsultation(d forms.ConsultationDraft) {
	if d.IsZero() {
		delete(v.sess.Values, keyConsultation)
		return
	}
	v.sess.Values[keyConsultation] = d
}

// Wizard restores the enrollment wizard, starting a new one when the
// session holds none.
func (v *Visit) Wizard() *wizard.Wizard {
	snap, ok := v.sess.Values[keyEnrollment].(wizard.Snapshot)
	if !ok {
		return wizard.New()
	}
	return wizard.Restore(snap)
}

func (v *Visit) SetWizard(w *wizard.Wizard) {
	v.sess.Values[keyEnrollment] = w.Snapshot()
}

func (v *Visit) AddNotification(n forms.Notification) {
	v.sess.AddFlash(n)
}

// Notifications returns and clears the pending notifications.
func (v *Visit) Notifications() []forms.Notification {
	var out []forms.Notification
	for _, f := range v.sess.Flashes() {
		if n, ok := f.(forms.Notification); ok {
			out = append(out, n)
		}
	}
	return out
}
