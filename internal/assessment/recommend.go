package assessment

import (
	"github.com/htncare/assessment-api/internal/model"
)

// Recommendation codes, in the fixed priority order rules are evaluated.
const (
	RecEmergencyReferral  = "emergency_referral"
	RecIntensifyTherapy   = "intensify_therapy"
	RecWeightReduction    = "weight_reduction"
	RecSmokingCessation   = "smoking_cessation"
	RecDiabetesManagement = "diabetes_management"
	RecBaselineWorkup     = "baseline_workup"
	RecSecondaryScreening = "secondary_screening"
)

// Recommend evaluates each rule independently in priority order and
// appends the action when it triggers. The emergency referral, when
// present, is always first; the baseline workup is always present.
func Recommend(r *model.PatientRecord, risk model.RiskCategory) []model.Recommendation {
	recs := make([]model.Recommendation, 0, 7)

	if r.Systolic >= EmergencySystolic || r.Diastolic >= EmergencyDiastolic {
		recs = append(recs, model.Recommendation{
			Code: RecEmergencyReferral,
			Text: "EMERGENCY REFERRAL - hypertensive crisis, refer immediately",
		})
	}

	if risk.Label == RiskHigh || risk.Label == RiskVeryHigh {
		recs = append(recs, model.Recommendation{
			Code: RecIntensifyTherapy,
			Text: "Start or intensify antihypertensive therapy",
		})
	}

	if r.BMI >= 25 {
		recs = append(recs, model.Recommendation{
			Code: RecWeightReduction,
			Text: "Weight reduction program",
		})
	}

	if r.Smoking {
		recs = append(recs, model.Recommendation{
			Code: RecSmokingCessation,
			Text: "Smoking cessation counseling",
		})
	}

	if r.Diabetes {
		recs = append(recs, model.Recommendation{
			Code: RecDiabetesManagement,
			Text: "Optimize diabetes management",
		})
	}

	recs = append(recs, model.Recommendation{
		Code: RecBaselineWorkup,
		Text: "Order basic investigations (CBC, LFT, KFT, Lipid Profile, HbA1c, TSH, ECG, Echo)",
	})

	if r.ResistantHypertension || r.EarlyOnset || r.MalignantHypertension {
		recs = append(recs, model.Recommendation{
			Code: RecSecondaryScreening,
			Text: "Screen for secondary hypertension",
		})
	}

	return recs
}
