package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/virtual-tryon-api/models"
)

func newJob(id string) *models.TryOn {
	return &models.TryOn{
		ID:        id,
		Status:    models.StatusProcessing,
		Message:   "Processing virtual try-on...",
		CreatedAt: time.Now(),
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Insert(ctx, newJob("a")))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, models.StatusProcessing, got.Status)

	url := "/api/v1/image/result/a"
	got.Status = models.StatusCompleted
	got.ResultImageURL = &url
	require.NoError(t, s.Update(ctx, got))

	updated, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.ResultImageURL)
	assert.Equal(t, url, *updated.ResultImageURL)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, newJob("missing")), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)

	// A failed delete must never create a record.
	jobs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Insert(ctx, newJob(fmt.Sprintf("job-%d", i))))
	}
	require.NoError(t, s.Delete(ctx, "job-2"))

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	assert.Equal(t, []string{"job-0", "job-1", "job-3", "job-4"}, ids)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Insert(ctx, newJob("a")))

	first, err := s.Get(ctx, "a")
	require.NoError(t, err)
	first.Status = models.StatusFailed
	first.Message = "mutated by caller"

	second, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, second.Status)
	assert.Equal(t, "Processing virtual try-on...", second.Message)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		id := fmt.Sprintf("job-%d", i)
		go func() {
			defer wg.Done()
			_ = s.Insert(ctx, newJob(id))
		}()
		go func() {
			defer wg.Done()
			_, _ = s.List(ctx)
		}()
		go func() {
			defer wg.Done()
			_ = s.Delete(ctx, id)
		}()
	}
	wg.Wait()

	// Whatever survived the races must still be readable.
	jobs, err := s.List(ctx)
	require.NoError(t, err)
	for _, job := range jobs {
		got, err := s.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, got.ID)
	}
}
