package assessment

import (
	"strings"

	"github.com/htncare/assessment-api/internal/model"
)

// Neutral BP defaults used when a record carries no reading, so the
// scorer stays total over partially populated records.
const (
	defaultSystolic  = 120
	defaultDiastolic = 80
)

// RiskScore computes the additive cardiovascular risk score. Every rule
// fires independently; zero-value fields contribute nothing, so a
// partially populated record scores without error.
func RiskScore(r *model.PatientRecord) int {
	score := 0

	switch {
	case r.Age > 65:
		score += 3
	case r.Age > 55:
		score += 2
	case r.Age > 45:
		score++
	}

	switch {
	case r.BMI >= 30:
		score += 2
	case r.BMI >= 25:
		score++
	}

	if r.Diabetes {
		score += 3
	}
	if r.CAD {
		score += 3
	}
	if r.CKD {
		score += 2
	}
	if r.Smoking {
		score += 2
	}

	systolic, diastolic := r.Systolic, r.Diastolic
	if systolic == 0 {
		systolic = defaultSystolic
	}
	if diastolic == 0 {
		diastolic = defaultDiastolic
	}

	bp := ClassifyBP(systolic, diastolic)
	switch {
	case strings.Contains(bp.Label, "Crisis"):
		score += 5
	case strings.Contains(bp.Label, "Stage 2"):
		score += 3
	case strings.Contains(bp.Label, "Stage 1"):
		score += 2
	}

	return score
}
