package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htncare/assessment-api/internal/assessment"
	"github.com/htncare/assessment-api/internal/model"
)

func TestRiskScoreEmptyRecord(t *testing.T) {
	// All factors neutral; the absent reading defaults to 120/80,
	// which lands on the Stage 1 rule via diastolic >= 80 and adds 2.
	rec := &model.PatientRecord{}
	assert.Equal(t, 2, assessment.RiskScore(rec))
}

func TestRiskScoreAgeBands(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{30, 0},
		{45, 0},
		{46, 1},
		{55, 1},
		{56, 2},
		{65, 2},
		{66, 3},
	}

	for _, tt := range tests {
		rec := &model.PatientRecord{Age: tt.age, Systolic: 110, Diastolic: 70}
		assert.Equal(t, tt.want, assessment.RiskScore(rec), "age %d", tt.age)
	}
}

func TestRiskScoreBMIBands(t *testing.T) {
	base := model.PatientRecord{Systolic: 110, Diastolic: 70}

	rec := base
	rec.BMI = 24.9
	assert.Equal(t, 0, assessment.RiskScore(&rec))

	rec.BMI = 25
	assert.Equal(t, 1, assessment.RiskScore(&rec))

	rec.BMI = 30
	assert.Equal(t, 2, assessment.RiskScore(&rec))
}

func TestRiskScoreComorbidityWeights(t *testing.T) {
	base := model.PatientRecord{Systolic: 110, Diastolic: 70}

	rec := base
	rec.Diabetes = true
	assert.Equal(t, 3, assessment.RiskScore(&rec))

	rec = base
	rec.CAD = true
	assert.Equal(t, 3, assessment.RiskScore(&rec))

	rec = base
	rec.CKD = true
	assert.Equal(t, 2, assessment.RiskScore(&rec))

	rec = base
	rec.Smoking = true
	assert.Equal(t, 2, assessment.RiskScore(&rec))

	// CVA is recorded but carries no weight.
	rec = base
	rec.CVA = true
	assert.Equal(t, 0, assessment.RiskScore(&rec))
}

func TestRiskScoreBPContribution(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		want      int
	}{
		{"normal", 110, 70, 0},
		{"elevated", 125, 75, 0},
		{"stage 1", 135, 85, 2},
		{"stage 2", 150, 95, 3},
		{"crisis-level reading scores as stage 2", 185, 125, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &model.PatientRecord{Systolic: tt.systolic, Diastolic: tt.diastolic}
			assert.Equal(t, tt.want, assessment.RiskScore(rec))
		})
	}
}

// Adding any single risk factor never lowers the score.
func TestRiskScoreMonotonic(t *testing.T) {
	base := model.PatientRecord{
		Age: 50, BMI: 26, Systolic: 135, Diastolic: 85,
	}
	baseScore := assessment.RiskScore(&base)

	bump := []func(r *model.PatientRecord){
		func(r *model.PatientRecord) { r.Age = 70 },
		func(r *model.PatientRecord) { r.BMI = 32 },
		func(r *model.PatientRecord) { r.Diabetes = true },
		func(r *model.PatientRecord) { r.CAD = true },
		func(r *model.PatientRecord) { r.CKD = true },
		func(r *model.PatientRecord) { r.Smoking = true },
		func(r *model.PatientRecord) { r.Systolic = 150 },
	}

	for i, mutate := range bump {
		rec := base
		mutate(&rec)
		assert.GreaterOrEqual(t, assessment.RiskScore(&rec), baseScore, "mutation %d", i)
	}
}

func TestRiskScoreEndToEnd(t *testing.T) {
	// 3 (age) + 2 (bmi) + 3 (diabetes) + 2 (smoking) + 3 (stage 2 bp) = 13
	rec := &model.PatientRecord{
		Age:       70,
		BMI:       31,
		Diabetes:  true,
		Smoking:   true,
		Systolic:  145,
		Diastolic: 95,
	}

	score := assessment.RiskScore(rec)
	assert.Equal(t, 13, score)

	cat := assessment.CategorizeRisk(score)
	assert.Equal(t, assessment.RiskVeryHigh, cat.Label)
	assert.Equal(t, model.TierHigh, cat.Tier)
}
