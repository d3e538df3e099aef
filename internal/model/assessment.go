package model

import (
	"time"

	"github.com/google/uuid"
)

// BPClassification is the named blood-pressure category with its
// severity tier.
type BPClassification struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

// RiskCategory is the named cardiovascular risk band with its severity
// tier.
type RiskCategory struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

// Recommendation is a single recommended action. Order within an
// assessment is significant: the emergency referral, when present, is
// always first.
type Recommendation struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Assessment is a committed patient record together with everything
// derived from it. Exactly one Assessment is live per session; a new
// commit replaces the previous one wholesale.
type Assessment struct {
	ID               uuid.UUID        `json:"id"`
	SessionID        string           `json:"session_id"`
	Record           PatientRecord    `json:"record"`
	BMIBand          string           `json:"bmi_band"`
	BPClassification BPClassification `json:"bp_classification"`
	RiskScore        int              `json:"risk_score"`
	RiskCategory     RiskCategory     `json:"risk_category"`
	Recommendations  []Recommendation `json:"recommendations"`
	CreatedAt        time.Time        `json:"created_at"`
}

// TreatmentPlan is the treatment-planning view built from a committed
// assessment.
type TreatmentPlan struct {
	RiskScore                int          `json:"risk_score"`
	RiskCategory             RiskCategory `json:"risk_category"`
	FirstLineAgents          []string     `json:"first_line_agents"`
	Comorbidities            []string     `json:"comorbidities"`
	ModifiableRiskFactors    []string     `json:"modifiable_risk_factors"`
	NonModifiableRiskFactors []string     `json:"non_modifiable_risk_factors"`
	BPTarget                 string       `json:"bp_target"`
	FollowUpInterval         string       `json:"follow_up_interval"`
}

// AssessmentReport is the exportable form of an assessment.
type AssessmentReport struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Assessment  Assessment `json:"assessment"`
}
