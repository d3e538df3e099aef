package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htncare/assessment-api/internal/assessment"
	"github.com/htncare/assessment-api/internal/model"
)

func TestBuildTreatmentPlan(t *testing.T) {
	rec := &model.PatientRecord{
		Age:                70,
		BMI:                31,
		Systolic:           145,
		Diastolic:          95,
		Diabetes:           true,
		Smoking:            true,
		FamilyHypertension: true,
	}

	score := assessment.RiskScore(rec)
	risk := assessment.CategorizeRisk(score)
	plan := assessment.BuildTreatmentPlan(rec, score, risk)

	assert.Equal(t, score, plan.RiskScore)
	assert.Equal(t, risk, plan.RiskCategory)
	assert.Len(t, plan.FirstLineAgents, 4)
	assert.Contains(t, plan.Comorbidities, "Diabetes Mellitus")
	assert.Equal(t, "<130/80 mmHg", plan.BPTarget)
	assert.Contains(t, plan.ModifiableRiskFactors, "Smoking")
	assert.Contains(t, plan.ModifiableRiskFactors, "Overweight/Obesity (BMI: 31.00)")
	assert.Contains(t, plan.NonModifiableRiskFactors, "Age (70 years)")
	assert.Contains(t, plan.NonModifiableRiskFactors, "Family history")
	assert.Equal(t, "2-4 weeks", plan.FollowUpInterval)
}

func TestBuildTreatmentPlanDefaults(t *testing.T) {
	rec := &model.PatientRecord{Age: 40, Systolic: 110, Diastolic: 70}
	score := assessment.RiskScore(rec)
	risk := assessment.CategorizeRisk(score)
	plan := assessment.BuildTreatmentPlan(rec, score, risk)

	assert.Equal(t, "<140/90 mmHg", plan.BPTarget)
	assert.Empty(t, plan.Comorbidities)
	assert.Equal(t, "3-6 months", plan.FollowUpInterval)
}
