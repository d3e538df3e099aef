package assessment

import "math"

// BMI band labels used in the assessment summary.
const (
	BandUnderweight = "Underweight"
	BandNormal      = "Normal weight"
	BandOverweight  = "Overweight"
	BandObese       = "Obese"
)

// BMI computes weight(kg)/height(m)^2 rounded to two decimal places.
// Returns 0 for a non-positive height rather than dividing by zero.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// BMIBand buckets a BMI value into the standard weight bands.
func BMIBand(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BandUnderweight
	case bmi < 25:
		return BandNormal
	case bmi < 30:
		return BandOverweight
	default:
		return BandObese
	}
}
