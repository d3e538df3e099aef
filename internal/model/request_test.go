package model_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htncare/assessment-api/internal/model"
)

func TestToRecord(t *testing.T) {
	req := &model.AssessmentRequest{
		PatientName:           "Jane Doe",
		Age:                   70,
		Sex:                   "female",
		WeightKg:              85,
		HeightCm:              165,
		Systolic:              145,
		Diastolic:             95,
		Diabetes:              true,
		Smoking:               true,
		ResistantHypertension: true,
		Medications:           []string{"NSAIDs"},
	}

	rec := req.ToRecord()
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, model.SexFemale, rec.Sex)
	assert.Equal(t, 145, rec.Systolic)
	assert.True(t, rec.Diabetes)
	assert.True(t, rec.ResistantHypertension)
	assert.Equal(t, []string{"NSAIDs"}, rec.Medications)

	// Derived fields stay zero until the service computes them.
	assert.Zero(t, rec.BMI)
	assert.True(t, rec.AssessedAt.IsZero())
}

func TestSystolicMustExceedDiastolic(t *testing.T) {
	v := validator.New()
	model.RegisterValidations(v)

	req := model.AssessmentRequest{
		Age: 50, Sex: "male", WeightKg: 80, HeightCm: 180,
		Systolic: 120, Diastolic: 80,
	}
	require.NoError(t, v.Struct(req))

	req.Systolic = 80
	req.Diastolic = 95
	err := v.Struct(req)
	require.Error(t, err)

	errs := err.(validator.ValidationErrors)
	assert.Equal(t, "bpspread", errs[0].Tag())
}
