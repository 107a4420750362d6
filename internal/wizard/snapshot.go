package wizard

import (
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
)

// Snapshot is the serialisable form of a Wizard, kept in the visitor session
// between requests.
type Snapshot struct {
	Step    int
	Program string
	Plan    string
	Method  string
	Contact forms.ContactDetails
}

func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		Step:    int(w.step),
		Program: string(w.program),
		Plan:    string(w.plan),
		Method:  string(w.method),
		Contact: w.contact,
	}
}

// Restore rebuilds a Wizard from s. Values that could not have been produced
// by the wizard itself fall back to their defaults, and a later step without
// a program returns to program selection.
func Restore(s Snapshot) *Wizard {
	w := New()
	if pt := models.ProgramType(s.Program); pt.Valid() {
		w.program = pt
	}
	if plan := models.PaymentPlan(s.Plan); plan.Valid() {
		w.plan = plan
	}
	if m := models.PaymentMethod(s.Method); m.Valid() && m.Available() {
		w.method = m
	}
	w.contact = s.Contact
	if step := Step(s.Step); step.valid() && (step == StepProgram || w.program != "") {
		w.step = step
	}
	return w
}
