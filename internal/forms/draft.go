// Package forms holds the transient drafts behind the consultation form and
// the enrollment contact step, plus the notifications that report their outcome.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/mitchellh/mapstructure"
	"github.com/tecaikids/website/internal/models"
)

var ErrUnknownField = errors.New("unknown form field")

// validate reports fields by their form names and treats whitespace-only
// values as empty, matching the live check in the page script.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ConsultationDraft is the single-step consultation form. Phone is optional.
type ConsultationDraft struct {
	FullName      string `mapstructure:"full_name" validate:"required,notblank"`
	Email         string `mapstructure:"email" validate:"required,notblank"`
	Phone         string `mapstructure:"phone"`
	ChildAgeGroup string `mapstructure:"child_age_group" validate:"required,notblank"`
	LearningGoals string `mapstructure:"learning_goals" validate:"required,notblank"`
}

// ConsultationFields lists the form field names in display order.
var ConsultationFields = []string{"full_name", "email", "phone", "child_age_group", "learning_goals"}

// UpdateConsultation returns a copy of d with field set to value.
func UpdateConsultation(d ConsultationDraft, field, value string) (ConsultationDraft, error) {
	err := updateField(&d, field, value)
	return d, err
}

// CanSubmit reports whether every required field has a non-blank value.
func (d ConsultationDraft) CanSubmit() bool {
	return validate.Struct(d) == nil
}

// Missing names the required fields still empty, in display order.
func (d ConsultationDraft) Missing() []string {
	return missingFields(d)
}

func (d ConsultationDraft) IsZero() bool {
	return d == ConsultationDraft{}
}

// Request is the payload posted to the backend, sent as entered.
func (d ConsultationDraft) Request() models.ConsultationRequest {
	return models.ConsultationRequest{
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		ChildAgeGroup: models.ProgramType(d.ChildAgeGroup),
		LearningGoals: d.LearningGoals,
	}
}

// ContactDetails is the enrollment wizard's final step. Every field is
// marked required on the form.
type ContactDetails struct {
	StudentFullName    string `mapstructure:"student_full_name" validate:"required,notblank"`
	ParentGuardianName string `mapstructure:"parent_guardian_name" validate:"required,notblank"`
	Email              string `mapstructure:"email" validate:"required,notblank"`
	Phone              string `mapstructure:"phone" validate:"required,notblank"`
	Address            string `mapstructure:"address" validate:"required,notblank"`
}

var ContactFields = []string{"student_full_name", "parent_guardian_name", "email", "phone", "address"}

func UpdateContact(d ContactDetails, field, value string) (ContactDetails, error) {
	err := updateField(&d, field, value)
	return d, err
}

func (d ContactDetails) Complete() bool {
	return validate.Struct(d) == nil
}

func (d ContactDetails) Missing() []string {
	return missingFields(d)
}

// updateField decodes a single key into target, leaving every other field
// untouched. Keys that do not name a field are rejected.
func updateField(target interface{}, field, value string) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]interface{}{field: value}); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func missingFields(d interface{}) []string {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

func (d ContactDetails) IsZero() bool {
	return d == ContactDetails{}
}
