package assessment

import (
	"github.com/htncare/assessment-api/internal/model"
)

// Risk category labels.
const (
	RiskLow      = "Low Risk"
	RiskModerate = "Moderate Risk"
	RiskHigh     = "High Risk"
	RiskVeryHigh = "Very High Risk"
)

// CategorizeRisk buckets a risk score into its named band. Bands are
// contiguous with inclusive upper bounds, so every non-negative score
// lands in exactly one.
func CategorizeRisk(score int) model.RiskCategory {
	switch {
	case score <= 3:
		return model.RiskCategory{Label: RiskLow, Tier: model.TierLow}
	case score <= 7:
		return model.RiskCategory{Label: RiskModerate, Tier: model.TierModerate}
	case score <= 12:
		return model.RiskCategory{Label: RiskHigh, Tier: model.TierHigh}
	default:
		return model.RiskCategory{Label: RiskVeryHigh, Tier: model.TierHigh}
	}
}
