package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/htncare/assessment-api/internal/assessment"
	"github.com/htncare/assessment-api/internal/model"
	"github.com/htncare/assessment-api/internal/repository/memory"
	assessmentService "github.com/htncare/assessment-api/internal/service/assessment"
	"github.com/htncare/assessment-api/pkg/errors"
)

func newService() *assessmentService.Service {
	store := memory.NewAssessmentStore(time.Minute, time.Minute)
	return assessmentService.NewService(store, nil)
}

func validRequest() *model.AssessmentRequest {
	return &model.AssessmentRequest{
		PatientName: "Jane Doe",
		Age:         70,
		Sex:         "female",
		WeightKg:    85,
		HeightCm:    165,
		Systolic:    145,
		Diastolic:   95,
		HeartRate:   78,
		Diabetes:    true,
		Smoking:     true,
	}
}

func TestGenerateAssessmentDerivesEverything(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	a, err := svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	// 85kg at 165cm -> BMI 31.22 -> obese.
	assert.Equal(t, 31.22, a.Record.BMI)
	assert.Equal(t, core.BandObese, a.BMIBand)
	assert.Equal(t, core.BPStage2, a.BPClassification.Label)

	// 3 (age) + 2 (bmi) + 3 (diabetes) + 2 (smoking) + 3 (stage 2) = 13
	assert.Equal(t, 13, a.RiskScore)
	assert.Equal(t, core.RiskVeryHigh, a.RiskCategory.Label)
	assert.Equal(t, model.TierHigh, a.RiskCategory.Tier)

	assert.NotEqual(t, a.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "s1", a.SessionID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.Record.AssessedAt.IsZero())
	assert.NotEmpty(t, a.Recommendations)
}

func TestGenerateAssessmentReplacesWholesale(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, err := svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Diabetes = false
	req.Smoking = false
	second, err := svc.GenerateAssessment(ctx, "s1", req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The stored assessment reflects only the second request: nothing
	// from the first commit leaks through.
	current, err := svc.CurrentAssessment(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.False(t, current.Record.Diabetes)
	assert.Equal(t, 8, current.RiskScore)
}

func TestCurrentAssessmentBeforeCommit(t *testing.T) {
	svc := newService()

	_, err := svc.CurrentAssessment(context.Background(), "fresh")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GenerateAssessment(ctx, "a", validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Age = 30
	req.Diabetes = false
	req.Smoking = false
	req.WeightKg = 60
	req.Systolic = 110
	req.Diastolic = 70
	_, err = svc.GenerateAssessment(ctx, "b", req)
	require.NoError(t, err)

	a, err := svc.CurrentAssessment(ctx, "a")
	require.NoError(t, err)
	b, err := svc.CurrentAssessment(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, core.RiskVeryHigh, a.RiskCategory.Label)
	assert.Equal(t, core.RiskLow, b.RiskCategory.Label)
}

func TestRecommendationsRequireAssessment(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Recommendations(ctx, "s1")
	assert.Error(t, err)

	_, err = svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	recs, err := svc.Recommendations(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, core.RecIntensifyTherapy, recs[0].Code)
}

func TestTreatmentPlan(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	plan, err := svc.TreatmentPlan(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 13, plan.RiskScore)
	assert.Equal(t, "<130/80 mmHg", plan.BPTarget)
	assert.Contains(t, plan.Comorbidities, "Diabetes Mellitus")
}

func TestReport(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	a, err := svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	report, err := svc.Report(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, report.Assessment.ID)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestDiscard(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GenerateAssessment(ctx, "s1", validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, "s1"))

	_, err = svc.CurrentAssessment(ctx, "s1")
	assert.Error(t, err)

	assert.Error(t, svc.Discard(ctx, "s1"))
}
