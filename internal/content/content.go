// Package content loads the static copy shown on the landing page: hero text,
// feature cards, per-program display tables and the payment catalogue.
package content

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"github.com/tecaikids/website/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

type Content struct {
	Brand        string       `yaml:"brand"`
	Hero         Hero         `yaml:"hero"`
	Stats        []StatLabel  `yaml:"stats"`
	Features     Features     `yaml:"features"`
	Programs     Programs     `yaml:"programs"`
	Enrollment   Enrollment   `yaml:"enrollment"`
	Consultation Consultation `yaml:"consultation"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Lead         string `yaml:"lead"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	Target       string `yaml:"target"`
}

// StatLabel describes one statistic tile. Fallback is shown when the backend
// value is missing or empty; Suffix is appended to whichever value is shown.
type StatLabel struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Fallback string `yaml:"fallback"`
	Suffix   string `yaml:"suffix"`
	Color    string `yaml:"color"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type Features struct {
	Badge string    `yaml:"badge"`
	Title string    `yaml:"title"`
	Lead  string    `yaml:"lead"`
	Items []Feature `yaml:"items"`
}

type ProgramDisplay struct {
	Type  models.ProgramType `yaml:"type"`
	Name  string             `yaml:"name"`
	Ages  string             `yaml:"ages"`
	Emoji string             `yaml:"emoji"`
	Icon  string             `yaml:"icon"`
}

// Label is the consultation age-group option text, e.g. "Smart Kids Mastery (10-12)".
func (p ProgramDisplay) Label() string {
	return p.Name + " (" + p.Ages + ")"
}

// OptionLabel is the enrollment program option text, prefixed with the emoji.
func (p ProgramDisplay) OptionLabel() string {
	return p.Emoji + " " + p.Label()
}

type Programs struct {
	Badge         string           `yaml:"badge"`
	Title         string           `yaml:"title"`
	Lead          string           `yaml:"lead"`
	FeaturedIndex int              `yaml:"featured_index"`
	FeaturedLabel string           `yaml:"featured_label"`
	CTA           string           `yaml:"cta"`
	DefaultEmoji  string           `yaml:"default_emoji"`
	DefaultIcon   string           `yaml:"default_icon"`
	Catalog       []ProgramDisplay `yaml:"catalog"`
}

// Display returns the display entry for pt, or one carrying the default
// emoji and icon when pt is not listed.
func (p Programs) Display(pt models.ProgramType) ProgramDisplay {
	for _, d := range p.Catalog {
		if d.Type == pt {
			return d
		}
	}
	return ProgramDisplay{Type: pt, Emoji: p.DefaultEmoji, Icon: p.DefaultIcon}
}

type Plan struct {
	Value       models.PaymentPlan `yaml:"value"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Badge       string             `yaml:"badge"`
}

type Method struct {
	Value       models.PaymentMethod `yaml:"value"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Available   bool                 `yaml:"available"`
}

type Enrollment struct {
	Badge     string   `yaml:"badge"`
	Title     string   `yaml:"title"`
	Lead      string   `yaml:"lead"`
	CardTitle string   `yaml:"card_title"`
	Guarantee string   `yaml:"guarantee"`
	Plans     []Plan   `yaml:"plans"`
	Methods   []Method `yaml:"methods"`
}

type Consultation struct {
	Badge        string   `yaml:"badge"`
	Title        string   `yaml:"title"`
	Lead         string   `yaml:"lead"`
	CardTitle    string   `yaml:"card_title"`
	CardLead     string   `yaml:"card_lead"`
	Expectations []string `yaml:"expectations"`
	Footnote     string   `yaml:"footnote"`
}

// Default returns the embedded content document.
func Default() (*Content, error) {
	return Parse(defaultDocument)
}

// Load reads the content document at path, or the embedded one when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read content file %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse content")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	for _, d := range c.Programs.Catalog {
		if !d.Type.Valid() {
			return errors.Errorf("content: unknown program type %q", d.Type)
		}
	}
	for _, p := range c.Enrollment.Plans {
		if !p.Value.Valid() {
			return errors.Errorf("content: unknown payment plan %q", p.Value)
		}
	}
	for _, m := range c.Enrollment.Methods {
		if !m.Value.Valid() {
			return errors.Errorf("content: unknown payment method %q", m.Value)
		}
		if m.Available != m.Value.Available() {
			return errors.Errorf("content: availability of %q does not match the enrollment flow", m.Value)
		}
	}
	return nil
}
