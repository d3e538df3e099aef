package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htncare/assessment-api/internal/assessment"
	"github.com/htncare/assessment-api/internal/model"
)

func TestClassifyBP(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		label     string
		tier      model.Tier
	}{
		{"normal", 110, 70, assessment.BPNormal, model.TierLow},
		{"normal upper edge", 119, 79, assessment.BPNormal, model.TierLow},
		{"elevated", 125, 75, assessment.BPElevated, model.TierModerate},
		{"elevated upper edge", 129, 79, assessment.BPElevated, model.TierModerate},
		{"stage 1 by systolic", 130, 70, assessment.BPStage1, model.TierModerate},
		{"stage 1 systolic upper edge", 139, 70, assessment.BPStage1, model.TierModerate},
		{"stage 1 by diastolic", 110, 80, assessment.BPStage1, model.TierModerate},
		{"stage 1 diastolic upper edge", 110, 89, assessment.BPStage1, model.TierModerate},
		{"stage 2 by systolic", 140, 85, assessment.BPStage2, model.TierHigh},
		{"stage 2 by diastolic", 135, 90, assessment.BPStage2, model.TierHigh},
		{"stage 2 both high", 160, 100, assessment.BPStage2, model.TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assessment.ClassifyBP(tt.systolic, tt.diastolic)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.tier, got.Tier)
		})
	}
}

// Readings at crisis level still classify as Stage 2: the Stage 2 rule
// precedes the Crisis rule and matches first. This precedence is part
// of the contract.
func TestClassifyBPStage2PrecedesCrisis(t *testing.T) {
	got := assessment.ClassifyBP(185, 125)
	assert.Equal(t, assessment.BPStage2, got.Label)
	assert.Equal(t, model.TierHigh, got.Tier)

	got = assessment.ClassifyBP(250, 150)
	assert.Equal(t, assessment.BPStage2, got.Label)
}

func TestClassifyBPTotalOverIntakeRanges(t *testing.T) {
	for systolic := 70; systolic <= 250; systolic += 5 {
		for diastolic := 40; diastolic <= 150; diastolic += 5 {
			got := assessment.ClassifyBP(systolic, diastolic)
			assert.NotEmpty(t, got.Label)
			assert.Contains(t, []model.Tier{model.TierLow, model.TierModerate, model.TierHigh}, got.Tier)
		}
	}
}
