package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

type ProgramType string

const (
	ProgramLittleLearners ProgramType = "little_learners"
	ProgramYoungExplorers ProgramType = "young_explorers"
	ProgramSmartKids      ProgramType = "smart_kids"
	ProgramTechTeens      ProgramType = "tech_teens"
	ProgramFutureLeaders  ProgramType = "future_leaders"
)

// ProgramTypes lists every program type in catalog order.
var ProgramTypes = []ProgramType{
	ProgramLittleLearners,
	ProgramYoungExplorers,
	ProgramSmartKids,
	ProgramTechTeens,
	ProgramFutureLeaders,
}

func (p ProgramType) Valid() bool {
	for _, t := range ProgramTypes {
		if p == t {
			return true
		}
	}
	return false
}

type PaymentPlan string

const (
	PlanMonthly   PaymentPlan = "monthly"
	PlanQuarterly PaymentPlan = "quarterly"
)

func (p PaymentPlan) Valid() bool {
	return p == PlanMonthly || p == PlanQuarterly
}

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodEzCash       PaymentMethod = "ez_cash"
)

func (m PaymentMethod) Valid() bool {
	return m == MethodCard || m == MethodBankTransfer || m == MethodEzCash
}

// Available reports whether the method can be used for a new enrollment.
// eZ Cash is listed but not yet accepted.
func (m PaymentMethod) Available() bool {
	return m == MethodCard || m == MethodBankTransfer
}
