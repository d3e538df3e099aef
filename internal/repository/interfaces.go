package repository

import (
	"context"

	"github.com/htncare/assessment-api/internal/model"
)

// AssessmentStore holds the single live assessment per session. Put
// replaces any previous assessment for the session wholesale.
type AssessmentStore interface {
	Put(ctx context.Context, sessionID string, a *model.Assessment) error
	Get(ctx context.Context, sessionID string) (*model.Assessment, error)
	Delete(ctx context.Context, sessionID string) error
	Count() int
}
