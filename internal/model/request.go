package model

import (
	"github.com/go-playground/validator/v10"
)

// AssessmentRequest carries the form fields for one assessment. Numeric
// ranges mirror the bounds the intake form enforces, so the scoring core
// only ever sees range-bounded values.
type AssessmentRequest struct {
	PatientName string  `json:"patient_name"`
	Age         int     `json:"age" binding:"required,gte=1,lte=120"`
	Sex         string  `json:"sex" binding:"required,oneof=male female"`
	WeightKg    float64 `json:"weight_kg" binding:"required,gte=20,lte=300"`
	HeightCm    float64 `json:"height_cm" binding:"required,gte=100,lte=250"`
	WaistCm     float64 `json:"waist_cm" binding:"omitempty,gte=50,lte=200"`

	Systolic  int `json:"systolic" binding:"required,gte=70,lte=250"`
	Diastolic int `json:"diastolic" binding:"required,gte=40,lte=150"`
	HeartRate int `json:"heart_rate" binding:"omitempty,gte=40,lte=200"`

	HypertensionYears int `json:"hypertension_years" binding:"omitempty,gte=0,lte=50"`

	Diabetes        bool        `json:"diabetes"`
	HbA1c           float64     `json:"hba1c" binding:"omitempty,gte=4,lte=15"`
	CAD             bool        `json:"cad"`
	CVA             bool        `json:"cva"`
	CKD             bool        `json:"ckd"`
	CKDStage        string      `json:"ckd_stage" binding:"omitempty,oneof='Stage 1' 'Stage 2' 'Stage 3' 'Stage 4' 'Stage 5'"`
	Dyslipidemia    bool        `json:"dyslipidemia"`
	Lipids          *LipidPanel `json:"lipids"`
	ThyroidDisorder bool        `json:"thyroid_disorder"`
	ThyroidType     string      `json:"thyroid_type" binding:"omitempty,oneof=hypothyroidism hyperthyroidism"`
	LVH             bool        `json:"lvh"`

	FamilyHypertension  bool `json:"family_hypertension"`
	FamilyCAD           bool `json:"family_cad"`
	FamilyStroke        bool `json:"family_stroke"`
	FamilyKidneyDisease bool `json:"family_kidney_disease"`

	Smoking            bool `json:"smoking"`
	CigarettesPerDay   int  `json:"cigarettes_per_day" binding:"omitempty,gte=1,lte=100"`
	SmokingYears       int  `json:"smoking_years" binding:"omitempty,gte=1,lte=60"`
	Alcohol            bool `json:"alcohol"`
	DrinksPerWeek      int  `json:"drinks_per_week" binding:"omitempty,gte=1,lte=50"`
	PhysicalInactivity bool `json:"physical_inactivity"`
	HighSaltIntake     bool `json:"high_salt_intake"`
	PoorDiet           bool `json:"poor_diet"`
	ChronicStress      bool `json:"chronic_stress"`
	SleepDeprivation   bool `json:"sleep_deprivation"`
	SleepApneaSymptoms bool `json:"sleep_apnea_symptoms"`

	ResistantHypertension bool     `json:"resistant_hypertension"`
	AcuteBPRise           bool     `json:"acute_bp_rise"`
	MalignantHypertension bool     `json:"malignant_hypertension"`
	EarlyOnset            bool     `json:"early_onset"`
	OnsetBeforePuberty    bool     `json:"onset_before_puberty"`
	RenalClues            []string `json:"renal_clues"`
	EndocrineClues        []string `json:"endocrine_clues"`
	Medications           []string `json:"medications"`
}

// RegisterValidations installs the cross-field rules that tag-level
// validation cannot express.
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(validateAssessmentRequest, AssessmentRequest{})
}

func validateAssessmentRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(AssessmentRequest)

	if req.Systolic != 0 && req.Diastolic != 0 && req.Systolic <= req.Diastolic {
		sl.ReportError(req.Systolic, "Systolic", "systolic", "bpspread", "")
	}
}

// ToRecord maps a validated request onto a fresh PatientRecord. Derived
// fields are left zero; the assessment service computes them.
func (r *AssessmentRequest) ToRecord() PatientRecord {
	return PatientRecord{
		Name:                  r.PatientName,
		Age:                   r.Age,
		Sex:                   Sex(r.Sex),
		WeightKg:              r.WeightKg,
		HeightCm:              r.HeightCm,
		WaistCm:               r.WaistCm,
		Systolic:              r.Systolic,
		Diastolic:             r.Diastolic,
		HeartRate:             r.HeartRate,
		HypertensionYears:     r.HypertensionYears,
		Diabetes:              r.Diabetes,
		HbA1c:                 r.HbA1c,
		CAD:                   r.CAD,
		CVA:                   r.CVA,
		CKD:                   r.CKD,
		CKDStage:              r.CKDStage,
		Dyslipidemia:          r.Dyslipidemia,
		Lipids:                r.Lipids,
		ThyroidDisorder:       r.ThyroidDisorder,
		ThyroidType:           r.ThyroidType,
		LVH:                   r.LVH,
		FamilyHypertension:    r.FamilyHypertension,
		FamilyCAD:             r.FamilyCAD,
		FamilyStroke:          r.FamilyStroke,
		FamilyKidneyDisease:   r.FamilyKidneyDisease,
		Smoking:               r.Smoking,
		CigarettesPerDay:      r.CigarettesPerDay,
		SmokingYears:          r.SmokingYears,
		Alcohol:               r.Alcohol,
		DrinksPerWeek:         r.DrinksPerWeek,
		PhysicalInactivity:    r.PhysicalInactivity,
		HighSaltIntake:        r.HighSaltIntake,
		PoorDiet:              r.PoorDiet,
		ChronicStress:         r.ChronicStress,
		SleepDeprivation:      r.SleepDeprivation,
		SleepApneaSymptoms:    r.SleepApneaSymptoms,
		ResistantHypertension: r.ResistantHypertension,
		AcuteBPRise:           r.AcuteBPRise,
		MalignantHypertension: r.MalignantHypertension,
		EarlyOnset:            r.EarlyOnset,
		OnsetBeforePuberty:    r.OnsetBeforePuberty,
		RenalClues:            r.RenalClues,
		EndocrineClues:        r.EndocrineClues,
		Medications:           r.Medications,
	}
}
