package wizard

import (
	"errors"
	"testing"

	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
)

func completeContact(t *testing.T, w *Wizard) {
	t.Helper()
	values := map[string]string{
		"student_full_name":    "Kavindi Silva",
		"parent_guardian_name": "Ruwan Silva",
		"email":                "ruwan@example.com",
		"phone":                "+94 71 555 0101",
		"address":              "12 Galle Road, Colombo",
	}
	for _, f := range forms.ContactFields {
		if err := w.UpdateContact(f, values[f]); err != nil {
			t.Fatalf("update %s: %v", f, err)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	w := New()
	if w.Step() != StepProgram {
		t.Fatalf("step = %v", w.Step())
	}
	if w.Plan() != models.PlanMonthly || w.Method() != models.MethodCard {
		t.Fatalf("defaults = %s/%s", w.Plan(), w.Method())
	}
	if w.CanAdvance() {
		t.Fatal("forward enabled without a program")
	}
}

func TestNextRequiresProgram(t *testing.T) {
	w := New()
	if err := w.Next(); !errors.Is(err, ErrNoProgram) {
		t.Fatalf("expected ErrNoProgram, got %v", err)
	}
	if err := w.SelectProgram(models.ProgramTechTeens); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !w.CanAdvance() {
		t.Fatal("forward disabled after selecting tech_teens")
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if w.Step() != StepPlan {
		t.Fatalf("step = %v", w.Step())
	}
}

func TestForwardBackForwardKeepsSelections(t *testing.T) {
	w := New()
	_ = w.SelectProgram(models.ProgramSmartKids)
	_ = w.Next()
	_ = w.SelectPlan(models.PlanQuarterly)
	_ = w.Next()
	completeContact(t, w)

	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if w.Step() != StepProgram || w.Program() != models.ProgramSmartKids {
		t.Fatalf("after back: step=%v program=%s", w.Step(), w.Program())
	}
	_ = w.Next()
	_ = w.Next()
	if w.Plan() != models.PlanQuarterly {
		t.Fatalf("plan lost: %s", w.Plan())
	}
	if !w.Contact().Complete() {
		t.Fatal("contact lost")
	}
}

func TestBackFromFirstStep(t *testing.T) {
	if err := New().Back(); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
}

func TestStepGuards(t *testing.T) {
	w := New()
	if err := w.SelectPlan(models.PlanQuarterly); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("plan on step 1: %v", err)
	}
	if err := w.UpdateContact("email", "x"); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("contact on step 1: %v", err)
	}
	if err := w.SelectProgram("chess_club"); !errors.Is(err, ErrUnknownProgram) {
		t.Fatalf("unknown program: %v", err)
	}
	_ = w.SelectProgram(models.ProgramLittleLearners)
	_ = w.Next()
	if err := w.SelectProgram(models.ProgramTechTeens); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("program on step 2: %v", err)
	}
	if err := w.SelectPlan("yearly"); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("unknown plan: %v", err)
	}
}

func TestSelectMethod(t *testing.T) {
	w := New()
	_ = w.SelectProgram(models.ProgramTechTeens)
	_ = w.Next()
	if err := w.SelectMethod(models.MethodEzCash); !errors.Is(err, ErrMethodUnavailable) {
		t.Fatalf("ez_cash: %v", err)
	}
	if err := w.SelectMethod("cheque"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("cheque: %v", err)
	}
	if err := w.SelectMethod(models.MethodBankTransfer); err != nil {
		t.Fatalf("bank transfer: %v", err)
	}
	if w.Method() != models.MethodBankTransfer {
		t.Fatalf("method = %s", w.Method())
	}
}

func TestAmountFollowsPlan(t *testing.T) {
	programs := []models.Program{{ProgramType: models.ProgramTechTeens, MonthlyPrice: 5000, QuarterlyPrice: 12000}}
	w := New()
	if _, ok := w.Amount(programs); ok {
		t.Fatal("amount without a program")
	}
	_ = w.SelectProgram(models.ProgramTechTeens)
	_ = w.Next()
	_ = w.SelectPlan(models.PlanQuarterly)
	if got, _ := w.Amount(programs); got != 12000 {
		t.Fatalf("quarterly amount = %d", got)
	}
	_ = w.SelectPlan(models.PlanMonthly)
	if got, _ := w.Amount(programs); got != 5000 {
		t.Fatalf("monthly amount = %d", got)
	}
}

func TestRequest(t *testing.T) {
	w := New()
	if _, err := w.Request(); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("request on step 1: %v", err)
	}
	_ = w.SelectProgram(models.ProgramFutureLeaders)
	_ = w.Next()
	_ = w.Next()
	if _, err := w.Request(); !errors.Is(err, ErrIncompleteContact) {
		t.Fatalf("request with empty contact: %v", err)
	}
	completeContact(t, w)
	req, err := w.Request()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.ProgramType != models.ProgramFutureLeaders || req.PaymentPlan != models.PlanMonthly || req.PaymentMethod != models.MethodCard {
		t.Fatalf("selections = %s/%s/%s", req.ProgramType, req.PaymentPlan, req.PaymentMethod)
	}
	if req.StudentFullName != "Kavindi Silva" || req.Address != "12 Galle Road, Colombo" {
		t.Fatalf("contact not merged: %+v", req)
	}

	w.Reset()
	if w.Step() != StepProgram || w.Program() != "" || !w.Contact().IsZero() {
		t.Fatalf("reset left state: %+v", w.Snapshot())
	}
}
