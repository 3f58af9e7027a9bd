package store

import (
	"context"
	"sync"

	"github.com/raushankrgupta/virtual-tryon-api/models"
)

// MemoryStore keeps job records in a mutex-guarded map. It preserves
// insertion order for List and hands out copies so callers never alias
// store-owned records.
type MemoryStore struct {
	mu    sync.Mutex
	jobs  map[string]*models.TryOn
	order []string
}

// NewMemoryStore creates an empty in-memory job store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[string]*models.TryOn)}
}

func (s *MemoryStore) Insert(ctx context.Context, job *models.TryOn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; !exists {
		s.order = append(s.order, job.ID)
	}
	s.jobs[job.ID] = copyJob(job)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, job *models.TryOn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; !exists {
		return ErrNotFound
	}
	s.jobs[job.ID] = copyJob(job)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.TryOn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyJob(job), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*models.TryOn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]*models.TryOn, 0, len(s.order))
	for _, id := range s.order {
		jobs = append(jobs, copyJob(s.jobs[id]))
	}
	return jobs, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	for i, jobID := range s.order {
		if jobID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyJob(job *models.TryOn) *models.TryOn {
	c := *job
	if job.ResultImageURL != nil {
		url := *job.ResultImageURL
		c.ResultImageURL = &url
	}
	if job.ErrorMessage != nil {
		msg := *job.ErrorMessage
		c.ErrorMessage = &msg
	}
	return &c
}

var _ JobStore = (*MemoryStore)(nil)
