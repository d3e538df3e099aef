package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htncare/assessment-api/internal/assessment"
)

func TestBMI(t *testing.T) {
	assert.Equal(t, 24.22, assessment.BMI(70, 170))
	assert.Equal(t, 22.88, assessment.BMI(80, 187))
	assert.Equal(t, 31.25, assessment.BMI(80, 160))
	assert.Equal(t, 0.0, assessment.BMI(70, 0))
}

func TestBMIBand(t *testing.T) {
	assert.Equal(t, assessment.BandUnderweight, assessment.BMIBand(18.49))
	assert.Equal(t, assessment.BandNormal, assessment.BMIBand(18.5))
	assert.Equal(t, assessment.BandNormal, assessment.BMIBand(24.99))
	assert.Equal(t, assessment.BandOverweight, assessment.BMIBand(25))
	assert.Equal(t, assessment.BandOverweight, assessment.BMIBand(29.99))
	assert.Equal(t, assessment.BandObese, assessment.BMIBand(30))
}
