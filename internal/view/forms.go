package view

import (
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/wizard"
)

type Option struct {
	Value    string
	Label    string
	Emoji    string
	Selected bool
}

type StepMarker struct {
	Number  int
	Reached bool
	Done    bool
}

type PlanOption struct {
	content.Plan
	Selected bool
}

type MethodOption struct {
	content.Method
	Selected bool
	Status   string
}

type EnrollmentView struct {
	Badge     string
	Title     string
	Lead      string
	CardTitle string
	Guarantee string

	Step       int
	Markers    []StepMarker
	Programs   []Option
	CanAdvance bool

	Plans       []PlanOption
	Methods     []MethodOption
	HasProgram  bool
	ProgramName string
	Amount      string

	Contact     forms.ContactDetails
	InFlight    bool
	SubmitLabel string
}

// EnrollmentSection renders the wizard's current step. The amount is derived
// from the catalog on every render; programs missing from it are shown at 0.
func EnrollmentSection(c *content.Content, w *wizard.Wizard, programs []models.Program, inFlight bool) EnrollmentView {
	ev := EnrollmentView{
		Badge:      c.Enrollment.Badge,
		Title:      c.Enrollment.Title,
		Lead:       c.Enrollment.Lead,
		CardTitle:  c.Enrollment.CardTitle,
		Guarantee:  c.Enrollment.Guarantee,
		Step:       w.Step().Number(),
		CanAdvance: w.CanAdvance(),
		HasProgram: w.Program() != "",
		Contact:    w.Contact(),
		InFlight:   inFlight,
	}
	for n := 1; n <= 3; n++ {
		ev.Markers = append(ev.Markers, StepMarker{Number: n, Reached: ev.Step >= n, Done: ev.Step > n})
	}
	for _, d := range c.Programs.Catalog {
		ev.Programs = append(ev.Programs, Option{
			Value:    string(d.Type),
			Label:    d.OptionLabel(),
			Emoji:    d.Emoji,
			Selected: d.Type == w.Program(),
		})
	}
	for _, p := range c.Enrollment.Plans {
		ev.Plans = append(ev.Plans, PlanOption{Plan: p, Selected: p.Value == w.Plan()})
	}
	for _, m := range c.Enrollment.Methods {
		status := "Available"
		if !m.Available {
			status = "Coming Soon"
		}
		ev.Methods = append(ev.Methods, MethodOption{Method: m, Selected: m.Value == w.Method(), Status: status})
	}
	for _, p := range programs {
		if p.ProgramType == w.Program() {
			ev.ProgramName = p.Name
			break
		}
	}
	amount, _ := w.Amount(programs)
	ev.Amount = LKR(amount)

	ev.SubmitLabel = "Complete Enrollment 🎉"
	if inFlight {
		ev.SubmitLabel = "Processing..."
	}
	return ev
}

type ConsultationView struct {
	content.Consultation
	Draft       forms.ConsultationDraft
	AgeGroups   []Option
	CanSubmit   bool
	InFlight    bool
	SubmitLabel string
}

func ConsultationSection(c *content.Content, d forms.ConsultationDraft, inFlight bool) ConsultationView {
	cv := ConsultationView{
		Consultation: c.Consultation,
		Draft:        d,
		CanSubmit:    d.CanSubmit() && !inFlight,
		InFlight:     inFlight,
		SubmitLabel:  "Schedule Free Expert Consultation 📅",
	}
	if inFlight {
		cv.SubmitLabel = "Sending Request..."
	}
	for _, p := range c.Programs.Catalog {
		cv.AgeGroups = append(cv.AgeGroups, Option{
			Value:    string(p.Type),
			Label:    p.Label(),
			Selected: string(p.Type) == d.ChildAgeGroup,
		})
	}
	return cv
}
