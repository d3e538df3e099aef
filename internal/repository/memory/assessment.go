package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/htncare/assessment-api/internal/model"
	"github.com/htncare/assessment-api/pkg/errors"
)

// AssessmentStore keeps each session's live assessment in memory with a
// TTL, so abandoned sessions age out on their own. There is no
// persistence behind it; a restart starts clean.
type AssessmentStore struct {
	cache *cache.Cache
}

func NewAssessmentStore(ttl, cleanupInterval time.Duration) *AssessmentStore {
	return &AssessmentStore{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (s *AssessmentStore) Put(_ context.Context, sessionID string, a *model.Assessment) error {
	// Set overwrites unconditionally, which is exactly the wholesale
	// replacement the commit semantics require.
	s.cache.SetDefault(sessionID, a)
	return nil
}

func (s *AssessmentStore) Get(_ context.Context, sessionID string) (*model.Assessment, error) {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, errors.NotFound("assessment", nil)
	}
	return v.(*model.Assessment), nil
}

func (s *AssessmentStore) Delete(_ context.Context, sessionID string) error {
	if _, ok := s.cache.Get(sessionID); !ok {
		return errors.NotFound("assessment", nil)
	}
	s.cache.Delete(sessionID)
	return nil
}

// Count reports the number of stored sessions. Entries that expired but
// have not been swept yet are still counted.
func (s *AssessmentStore) Count() int {
	return s.cache.ItemCount()
}
