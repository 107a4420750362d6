// Package wizard implements the three-step enrollment flow:
// program selection, payment plan, then contact details and submission.
package wizard

import (
	"errors"

	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/pricing"
)

type Step int

const (
	StepProgram Step = iota + 1
	StepPlan
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepProgram:
		return "program"
	case StepPlan:
		return "plan"
	case StepDetails:
		return "details"
	}
	return "unknown"
}

// Number is the 1-based position shown in the progress indicator.
func (s Step) Number() int { return int(s) }

func (s Step) valid() bool { return s >= StepProgram && s <= StepDetails }

var (
	ErrNoProgram         = errors.New("no program selected")
	ErrWrongStep         = errors.New("action not available at this step")
	ErrUnknownProgram    = errors.New("unknown program type")
	ErrUnknownPlan       = errors.New("unknown payment plan")
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrMethodUnavailable = errors.New("payment method not available yet")
	ErrIncompleteContact = errors.New("contact details incomplete")
)

// Wizard holds the enrollment draft. The zero value is not usable; call New.
//
// A program is always selected once the wizard has left StepProgram, so
// the plan and details steps never run without one.
type Wizard struct {
	step    Step
	program models.ProgramType
	plan    models.PaymentPlan
	method  models.PaymentMethod
	contact forms.ContactDetails
}

func New() *Wizard {
	w := &Wizard{}
	w.Reset()
	return w
}

// Reset clears every selection and returns to the first step.
func (w *Wizard) Reset() {
	*w = Wizard{
		step:   StepProgram,
		plan:   models.PlanMonthly,
		method: models.MethodCard,
	}
}

func (w *Wizard) Step() Step                    { return w.step }
func (w *Wizard) Program() models.ProgramType   { return w.program }
func (w *Wizard) Plan() models.PaymentPlan      { return w.plan }
func (w *Wizard) Method() models.PaymentMethod  { return w.method }
func (w *Wizard) Contact() forms.ContactDetails { return w.contact }

// CanAdvance reports whether the forward control of the current step is enabled.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepProgram:
		return w.program != ""
	case StepPlan:
		return true
	}
	return false
}

func (w *Wizard) SelectProgram(pt models.ProgramType) error {
	if w.step != StepProgram {
		return ErrWrongStep
	}
	if !pt.Valid() {
		return ErrUnknownProgram
	}
	w.program = pt
	return nil
}

// Next moves one step forward. From the details step there is no forward
// transition; submission goes through Request.
func (w *Wizard) Next() error {
	switch w.step {
	case StepProgram:
		if w.program == "" {
			return ErrNoProgram
		}
		w.step = StepPlan
	case StepPlan:
		w.step = StepDetails
	default:
		return ErrWrongStep
	}
	return nil
}

// Back moves one step backward, keeping every selection made so far.
func (w *Wizard) Back() error {
	switch w.step {
	case StepPlan:
		w.step = StepProgram
	case StepDetails:
		w.step = StepPlan
	default:
		return ErrWrongStep
	}
	return nil
}

func (w *Wizard) SelectPlan(plan models.PaymentPlan) error {
	if w.step != StepPlan {
		return ErrWrongStep
	}
	if !plan.Valid() {
		return ErrUnknownPlan
	}
	w.plan = plan
	return nil
}

func (w *Wizard) SelectMethod(m models.PaymentMethod) error {
	if w.step != StepPlan {
		return ErrWrongStep
	}
	if !m.Valid() {
		return ErrUnknownMethod
	}
	if !m.Available() {
		return ErrMethodUnavailable
	}
	w.method = m
	return nil
}

func (w *Wizard) UpdateContact(field, value string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	c, err := forms.UpdateContact(w.contact, field, value)
	if err != nil {
		return err
	}
	w.contact = c
	return nil
}

// Amount is the price charged for the selected program under the selected
// plan. It is false when nothing is selected or the program is not listed.
func (w *Wizard) Amount(programs []models.Program) (int64, bool) {
	if w.program == "" {
		return 0, false
	}
	return pricing.Amount(programs, w.program, w.plan)
}

// Request builds the enrollment payload. It is only available on the
// details step once every contact field is filled in.
func (w *Wizard) Request() (models.EnrollmentRequest, error) {
	if w.step != StepDetails {
		return models.EnrollmentRequest{}, ErrWrongStep
	}
	if !w.contact.Complete() {
		return models.EnrollmentRequest{}, ErrIncompleteContact
	}
	return models.EnrollmentRequest{
		StudentFullName:    w.contact.StudentFullName,
		ParentGuardianName: w.contact.ParentGuardianName,
		Email:              w.contact.Email,
		Phone:              w.contact.Phone,
		Address:            w.contact.Address,
		ProgramType:        w.program,
		PaymentPlan:        w.plan,
		PaymentMethod:      w.method,
	}, nil
}
