package view

import (
	"github.com/spf13/cast"
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/pricing"
)

type HeroView struct {
	content.Hero
	Stats []StatTile
}

type StatTile struct {
	Label string
	Value string
	Color string
}

func HeroSection(c *content.Content, stats models.Stats) HeroView {
	return HeroView{Hero: c.Hero, Stats: StatsSection(c, stats)}
}

// StatsSection builds the four headline tiles. A missing value shows the
// tile's fallback; total_students is digit-grouped when numeric.
func StatsSection(c *content.Content, stats models.Stats) []StatTile {
	tiles := make([]StatTile, 0, len(c.Stats))
	for _, l := range c.Stats {
		v := statValue(stats, l.Key)
		shown := l.Fallback
		if present(v) {
			if l.Key == "total_students" {
				shown = localized(v)
			} else {
				shown = cast.ToString(v)
			}
		}
		tiles = append(tiles, StatTile{Label: l.Label, Value: shown + l.Suffix, Color: l.Color})
	}
	return tiles
}

func statValue(s models.Stats, key string) interface{} {
	switch key {
	case "total_students":
		return s.TotalStudents
	case "success_rate":
		return s.SuccessRate
	case "expert_educators":
		return s.ExpertEducators
	case "support_hours":
		return s.SupportHours
	case "total_enrollments":
		return s.TotalEnrollments
	case "total_consultations":
		return s.TotalConsultations
	}
	return nil
}

func FeaturesSection(c *content.Content) content.Features {
	return c.Features
}

type ProgramCard struct {
	Emoji          string
	Icon           string
	Name           string
	AgeRange       string
	Description    string
	Monthly        string
	Quarterly      string
	Savings        string
	SavingsPercent int
	Features       []string
	Featured       bool
	FeaturedLabel  string
	CTA            string
	Href           string
}

type ProgramsView struct {
	Badge string
	Title string
	Lead  string
	Cards []ProgramCard
}

// ProgramsSection builds one card per program in catalog order. Each card
// links to the enrollment section.
func ProgramsSection(c *content.Content, programs []models.Program) ProgramsView {
	pv := ProgramsView{Badge: c.Programs.Badge, Title: c.Programs.Title, Lead: c.Programs.Lead}
	for i, p := range programs {
		d := c.Programs.Display(p.ProgramType)
		pv.Cards = append(pv.Cards, ProgramCard{
			Emoji:          d.Emoji,
			Icon:           d.Icon,
			Name:           p.Name,
			AgeRange:       p.AgeRange,
			Description:    p.Description,
			Monthly:        LKR(p.MonthlyPrice),
			Quarterly:      LKR(p.QuarterlyPrice),
			Savings:        LKR(pricing.Savings(p)),
			SavingsPercent: pricing.SavingsPercent(p),
			Features:       p.Features,
			Featured:       i == c.Programs.FeaturedIndex,
			FeaturedLabel:  c.Programs.FeaturedLabel,
			CTA:            c.Programs.CTA,
			Href:           "#enrollment",
		})
	}
	return pv
}
