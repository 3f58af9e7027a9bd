package store

import (
	"context"
	"errors"

	"github.com/raushankrgupta/virtual-tryon-api/models"
)

// ErrNotFound is returned when no job exists for the given id.
var ErrNotFound = errors.New("try-on not found")

// JobStore is the single source of truth for try-on job records.
type JobStore interface {
	Insert(ctx context.Context, job *models.TryOn) error
	Update(ctx context.Context, job *models.TryOn) error
	Get(ctx context.Context, id string) (*models.TryOn, error)
	List(ctx context.Context) ([]*models.TryOn, error)
	Delete(ctx context.Context, id string) error
}
