package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	core "github.com/htncare/assessment-api/internal/assessment"
	"github.com/htncare/assessment-api/internal/model"
	"github.com/htncare/assessment-api/internal/repository"
	"github.com/htncare/assessment-api/pkg/metrics"
)

type AssessmentService interface {
	GenerateAssessment(ctx context.Context, sessionID string, req *model.AssessmentRequest) (*model.Assessment, error)
	CurrentAssessment(ctx context.Context, sessionID string) (*model.Assessment, error)
	Recommendations(ctx context.Context, sessionID string) ([]model.Recommendation, error)
	TreatmentPlan(ctx context.Context, sessionID string) (*model.TreatmentPlan, error)
	Report(ctx context.Context, sessionID string) (*model.AssessmentReport, error)
	Discard(ctx context.Context, sessionID string) error
}

type Service struct {
	store   repository.AssessmentStore
	metrics *metrics.Metrics
}

func NewService(store repository.AssessmentStore, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		metrics: m,
	}
}

// GenerateAssessment builds a fresh record from the request, derives
// everything downstream of it, and commits the result for the session.
// The previous assessment for the session, if any, is replaced
// wholesale.
func (s *Service) GenerateAssessment(ctx context.Context, sessionID string, req *model.AssessmentRequest) (*model.Assessment, error) {
	start := time.Now()

	record := req.ToRecord()
	record.BMI = core.BMI(record.WeightKg, record.HeightCm)
	record.AssessedAt = start

	bp := core.ClassifyBP(record.Systolic, record.Diastolic)
	score := core.RiskScore(&record)
	risk := core.CategorizeRisk(score)
	recs := core.Recommend(&record, risk)

	a := &model.Assessment{
		ID:               uuid.New(),
		SessionID:        sessionID,
		Record:           record,
		BMIBand:          core.BMIBand(record.BMI),
		BPClassification: bp,
		RiskScore:        score,
		RiskCategory:     risk,
		Recommendations:  recs,
		CreatedAt:        start,
	}

	if err := s.store.Put(ctx, sessionID, a); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AssessmentsTotal.WithLabelValues(risk.Label).Inc()
		s.metrics.BPClassifications.WithLabelValues(bp.Label).Inc()
		if recs[0].Code == core.RecEmergencyReferral {
			s.metrics.EmergencyReferrals.Inc()
		}
		s.metrics.AssessmentLatency.Observe(time.Since(start).Seconds())
	}

	return a, nil
}

func (s *Service) CurrentAssessment(ctx context.Context, sessionID string) (*model.Assessment, error) {
	a, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return a, nil
}

func (s *Service) Recommendations(ctx context.Context, sessionID string) ([]model.Recommendation, error) {
	a, err := s.CurrentAssessment(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return a.Recommendations, nil
}

// TreatmentPlan derives the treatment-planning view from the session's
// committed assessment.
func (s *Service) TreatmentPlan(ctx context.Context, sessionID string) (*model.TreatmentPlan, error) {
	a, err := s.CurrentAssessment(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return core.BuildTreatmentPlan(&a.Record, a.RiskScore, a.RiskCategory), nil
}

// Report wraps the current assessment for export.
func (s *Service) Report(ctx context.Context, sessionID string) (*model.AssessmentReport, error) {
	a, err := s.CurrentAssessment(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.AssessmentReport{
		GeneratedAt: time.Now(),
		Assessment:  *a,
	}, nil
}

func (s *Service) Discard(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to discard assessment: %w", err)
	}
	return nil
}
