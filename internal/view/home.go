package view

import (
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
)

type Page struct {
	Brand         string
	Notifications []forms.Notification
	Hero          HeroView
	Stats         []StatTile
	Features      content.Features
	Programs      ProgramsView
	Enrollment    EnrollmentView
	Consultation  ConsultationView
}

// Home composes every section from the loaded catalog. Catalog data is
// only read, never modified.
func Home(c *content.Content, programs []models.Program, stats models.Stats, enrollment EnrollmentView, consultation ConsultationView, notes []forms.Notification) Page {
	return Page{
		Brand:         c.Brand,
		Notifications: notes,
		Hero:          HeroSection(c, stats),
		Stats:         StatsSection(c, stats),
		Features:      FeaturesSection(c),
		Programs:      ProgramsSection(c, programs),
		Enrollment:    enrollment,
		Consultation:  consultation,
	}
}
