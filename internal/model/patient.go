package model

import (
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Tier is the coarse severity bucket attached to a BP classification
// or a risk category.
type Tier string

const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// LipidPanel holds the lipid values collected when dyslipidemia is reported.
type LipidPanel struct {
	TotalCholesterol int `json:"total_cholesterol"`
	LDL              int `json:"ldl"`
	HDL              int `json:"hdl"`
}

// PatientRecord is the single live record for a session. It is built
// wholesale from an AssessmentRequest on every commit; derived fields
// (BMI and everything downstream of it) are recomputed at that point
// and never set independently.
type PatientRecord struct {
	Name string `json:"name,omitempty"`
	Age  int    `json:"age"`
	Sex  Sex    `json:"sex"`

	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	WaistCm  float64 `json:"waist_cm,omitempty"`
	BMI      float64 `json:"bmi"`

	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
	HeartRate int `json:"heart_rate,omitempty"`

	HypertensionYears int `json:"hypertension_years,omitempty"`

	// Comorbidities
	Diabetes        bool        `json:"diabetes"`
	HbA1c           float64     `json:"hba1c,omitempty"`
	CAD             bool        `json:"cad"`
	CVA             bool        `json:"cva"`
	CKD             bool        `json:"ckd"`
	CKDStage        string      `json:"ckd_stage,omitempty"`
	Dyslipidemia    bool        `json:"dyslipidemia"`
	Lipids          *LipidPanel `json:"lipids,omitempty"`
	ThyroidDisorder bool        `json:"thyroid_disorder"`
	ThyroidType     string      `json:"thyroid_type,omitempty"`
	LVH             bool        `json:"lvh"`

	// Family history
	FamilyHypertension  bool `json:"family_hypertension"`
	FamilyCAD           bool `json:"family_cad"`
	FamilyStroke        bool `json:"family_stroke"`
	FamilyKidneyDisease bool `json:"family_kidney_disease"`

	// Modifiable risk factors
	Smoking            bool `json:"smoking"`
	CigarettesPerDay   int  `json:"cigarettes_per_day,omitempty"`
	SmokingYears       int  `json:"smoking_years,omitempty"`
	Alcohol            bool `json:"alcohol"`
	DrinksPerWeek      int  `json:"drinks_per_week,omitempty"`
	PhysicalInactivity bool `json:"physical_inactivity"`
	HighSaltIntake     bool `json:"high_salt_intake"`
	PoorDiet           bool `json:"poor_diet"`
	ChronicStress      bool `json:"chronic_stress"`
	SleepDeprivation   bool `json:"sleep_deprivation"`
	SleepApneaSymptoms bool `json:"sleep_apnea_symptoms"`

	// Secondary hypertension screening
	ResistantHypertension bool     `json:"resistant_hypertension"`
	AcuteBPRise           bool     `json:"acute_bp_rise"`
	MalignantHypertension bool     `json:"malignant_hypertension"`
	EarlyOnset            bool     `json:"early_onset"`
	OnsetBeforePuberty    bool     `json:"onset_before_puberty"`
	RenalClues            []string `json:"renal_clues,omitempty"`
	EndocrineClues        []string `json:"endocrine_clues,omitempty"`
	Medications           []string `json:"medications,omitempty"`

	AssessedAt time.Time `json:"assessed_at"`
}
