package models

// Program is one fixed-price offering as served by the backend catalog.
type Program struct {
	ID             string      `json:"id"`
	ProgramType    ProgramType `json:"program_type"`
	Name           string      `json:"name"`
	AgeRange       string      `json:"age_range"`
	Description    string      `json:"description"`
	MonthlyPrice   int64       `json:"monthly_price"`
	QuarterlyPrice int64       `json:"quarterly_price"`
	Features       []string    `json:"features"`
}

// Stats holds the aggregate counters. The backend mixes numbers and
// strings ("99%", "24/7"), and any field may be missing, so values are
// kept loosely typed and interpreted at display time.
type Stats struct {
	TotalStudents      interface{} `json:"total_students,omitempty"`
	SuccessRate        interface{} `json:"success_rate,omitempty"`
	ExpertEducators    interface{} `json:"expert_educators,omitempty"`
	SupportHours       interface{} `json:"support_hours,omitempty"`
	TotalEnrollments   interface{} `json:"total_enrollments,omitempty"`
	TotalConsultations interface{} `json:"total_consultations,omitempty"`
}

type ConsultationRequest struct {
	FullName      string      `json:"full_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	ChildAgeGroup ProgramType `json:"child_age_group"`
	LearningGoals string      `json:"learning_goals"`
}

type EnrollmentRequest struct {
	StudentFullName    string        `json:"student_full_name"`
	ParentGuardianName string        `json:"parent_guardian_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Address            string        `json:"address"`
	ProgramType        ProgramType   `json:"program_type"`
	PaymentPlan        PaymentPlan   `json:"payment_plan"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
}

// Receipt is the part of a created consultation or enrollment record the
// site keeps for logging. Amount is only set for enrollments.
type Receipt struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount,omitempty"`
}
