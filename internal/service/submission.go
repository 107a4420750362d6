package service

import (
	"context"

	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/wizard"
	"go.uber.org/zap"
)

type Submitter interface {
	CreateConsultation(ctx context.Context, req models.ConsultationRequest) (models.Receipt, error)
	CreateEnrollment(ctx context.Context, req models.EnrollmentRequest) (models.Receipt, error)
}

// SubmissionService posts finished drafts to the backend and turns the
// outcome into the notification shown to the visitor.
type SubmissionService struct {
	backend Submitter
	log     *zap.Logger
}

func NewSubmissionService(b Submitter, log *zap.Logger) *SubmissionService {
	return &SubmissionService{backend: b, log: log}
}

// SubmitConsultation sends the draft as entered. The returned bool reports
// success; the caller resets the draft only then.
func (s *SubmissionService) SubmitConsultation(ctx context.Context, d forms.ConsultationDraft) (forms.Notification, bool) {
	rcpt, err := s.backend.CreateConsultation(ctx, d.Request())
	if err != nil {
		s.log.Warn("consultation request failed", zap.Error(err))
		return forms.ConsultationFailed(), false
	}
	s.log.Info("consultation request created",
		zap.String("id", rcpt.ID),
		zap.String("child_age_group", d.ChildAgeGroup))
	return forms.ConsultationSent(), true
}

// SubmitEnrollment sends the wizard's payload. The wizard must be on the
// details step with every contact field filled.
func (s *SubmissionService) SubmitEnrollment(ctx context.Context, w *wizard.Wizard) (forms.Notification, bool) {
	req, err := w.Request()
	if err != nil {
		return forms.Incomplete("enrollment", w.Contact().Missing()), false
	}
	rcpt, err := s.backend.CreateEnrollment(ctx, req)
	if err != nil {
		s.log.Warn("enrollment failed", zap.Error(err),
			zap.String("program_type", string(req.ProgramType)))
		return forms.EnrollmentFailed(), false
	}
	s.log.Info("enrollment created",
		zap.String("id", rcpt.ID),
		zap.String("program_type", string(req.ProgramType)),
		zap.String("payment_plan", string(req.PaymentPlan)),
		zap.Int64("amount", rcpt.Amount))
	return forms.EnrollmentSucceeded(), true
}
