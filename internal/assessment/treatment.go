package assessment

import (
	"fmt"

	"github.com/htncare/assessment-api/internal/model"
)

// firstLineAgents are the standard first-line antihypertensive classes.
var firstLineAgents = []string{
	"ACE Inhibitors (ACEi)",
	"Angiotensin Receptor Blockers (ARB)",
	"Calcium Channel Blockers (CCB)",
	"Thiazide/Thiazide-like Diuretics",
}

// BuildTreatmentPlan assembles the treatment-planning view for a scored
// record: first-line agent options, reported comorbidities, the risk
// factors split by modifiability, a comorbidity-adjusted BP target, and
// a follow-up interval by severity tier.
func BuildTreatmentPlan(r *model.PatientRecord, score int, risk model.RiskCategory) *model.TreatmentPlan {
	plan := &model.TreatmentPlan{
		RiskScore:       score,
		RiskCategory:    risk,
		FirstLineAgents: firstLineAgents,
		BPTarget:        "<140/90 mmHg",
	}

	if r.Diabetes {
		plan.Comorbidities = append(plan.Comorbidities, "Diabetes Mellitus")
	}
	if r.CAD {
		plan.Comorbidities = append(plan.Comorbidities, "Coronary Artery Disease")
	}
	if r.CVA {
		plan.Comorbidities = append(plan.Comorbidities, "Cerebrovascular Accident")
	}
	if r.CKD {
		plan.Comorbidities = append(plan.Comorbidities, "Chronic Kidney Disease")
	}

	// Tighter target for diabetic or renal patients.
	if r.Diabetes || r.CKD {
		plan.BPTarget = "<130/80 mmHg"
	}

	if r.Smoking {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors, "Smoking")
	}
	if r.PhysicalInactivity {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors, "Physical inactivity")
	}
	if r.BMI >= 25 {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors,
			fmt.Sprintf("Overweight/Obesity (BMI: %.2f)", r.BMI))
	}
	if r.HighSaltIntake {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors, "High salt intake")
	}
	if r.Alcohol {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors, "Alcohol consumption")
	}
	if r.ChronicStress {
		plan.ModifiableRiskFactors = append(plan.ModifiableRiskFactors, "Chronic stress")
	}

	if r.Age > 55 {
		plan.NonModifiableRiskFactors = append(plan.NonModifiableRiskFactors,
			fmt.Sprintf("Age (%d years)", r.Age))
	}
	if r.FamilyHypertension || r.FamilyCAD || r.FamilyStroke || r.FamilyKidneyDisease {
		plan.NonModifiableRiskFactors = append(plan.NonModifiableRiskFactors, "Family history")
	}

	switch risk.Tier {
	case model.TierHigh:
		plan.FollowUpInterval = "2-4 weeks"
	case model.TierModerate:
		plan.FollowUpInterval = "1-3 months"
	default:
		plan.FollowUpInterval = "3-6 months"
	}

	return plan
}
