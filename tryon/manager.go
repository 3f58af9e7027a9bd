package tryon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raushankrgupta/virtual-tryon-api/artifacts"
	"github.com/raushankrgupta/virtual-tryon-api/models"
	"github.com/raushankrgupta/virtual-tryon-api/store"
)

// ResultPathPrefix is the relative URL prefix stored on completed jobs.
// Handlers rewrite it to an absolute URL per request.
const ResultPathPrefix = "/api/v1/image/result/"

var allowedContentTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// ErrResultMissing means a completed job has no artifact on disk.
// This is an integrity violation, distinct from an unknown id.
var ErrResultMissing = errors.New("result image not found")

// ValidationError rejects an upload before any job record is created.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotCompletedError rejects a result fetch for a job that has not
// reached the completed state.
type NotCompletedError struct {
	Status models.Status
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("Try-on is not completed. Current status: %s", e.Status)
}

// Generator produces a composited try-on image from a person image and
// a clothing image.
type Generator interface {
	GenerateTryOn(ctx context.Context, personImage, clothingImage []byte, personFilename, clothingFilename string) ([]byte, error)
}

// Upload carries one uploaded image into the pipeline.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// Manager owns the try-on job lifecycle: it creates the record, drives
// the generation pipeline to a terminal state, and answers every query
// about a job or its result image.
type Manager struct {
	store     store.JobStore
	artifacts artifacts.ArtifactStore
	generator Generator
}

// NewManager wires a manager from its collaborators.
func NewManager(jobs store.JobStore, arts artifacts.ArtifactStore, generator Generator) *Manager {
	return &Manager{store: jobs, artifacts: arts, generator: generator}
}

// Create validates both uploads, inserts a processing record and runs
// the pipeline to completion before returning. On any pipeline failure
// the job is kept in the failed state and returned alongside the error,
// so the record stays inspectable.
func (m *Manager) Create(ctx context.Context, person, clothing Upload) (*models.TryOn, error) {
	if !isAllowedContentType(person.ContentType) {
		return nil, &ValidationError{Message: fmt.Sprintf(
			"Invalid model image type. Allowed types: %s", strings.Join(allowedContentTypes, ", "))}
	}
	if !isAllowedContentType(clothing.ContentType) {
		return nil, &ValidationError{Message: fmt.Sprintf(
			"Invalid clothing image type. Allowed types: %s", strings.Join(allowedContentTypes, ", "))}
	}

	// A client disconnect must not abort the pipeline; the job still
	// has to reach a terminal state and stay queryable.
	ctx = context.WithoutCancel(ctx)

	job := &models.TryOn{
		ID:        uuid.NewString(),
		Status:    models.StatusProcessing,
		Message:   "Processing virtual try-on...",
		CreatedAt: time.Now(),
	}
	if err := m.store.Insert(ctx, job); err != nil {
		return nil, err
	}
	log.Info().Str("tryon_id", job.ID).Msg("try-on job created")

	personBytes, err := io.ReadAll(person.Reader)
	if err != nil {
		return m.fail(ctx, job, fmt.Sprintf("failed to read model image: %v", err))
	}
	clothingBytes, err := io.ReadAll(clothing.Reader)
	if err != nil {
		return m.fail(ctx, job, fmt.Sprintf("failed to read clothing image: %v", err))
	}

	image, err := m.generator.GenerateTryOn(ctx, personBytes, clothingBytes, person.Filename, clothing.Filename)
	if err != nil {
		return m.fail(ctx, job, fmt.Sprintf("Processing failed: %v", err))
	}

	if err := m.artifacts.Save(ctx, job.ID, image); err != nil {
		return m.fail(ctx, job, fmt.Sprintf("failed to save result image: %v", err))
	}

	resultURL := ResultPathPrefix + job.ID
	job.Status = models.StatusCompleted
	job.Message = "Virtual try-on completed successfully"
	job.ResultImageURL = &resultURL
	if err := m.store.Update(ctx, job); err != nil {
		return nil, err
	}
	log.Info().Str("tryon_id", job.ID).Msg("try-on completed")
	return job, nil
}

// fail transitions the job to its terminal failed state and returns the
// failure as an error for the caller.
func (m *Manager) fail(ctx context.Context, job *models.TryOn, message string) (*models.TryOn, error) {
	detail := message
	job.Status = models.StatusFailed
	job.Message = message
	job.ErrorMessage = &detail
	if err := m.store.Update(ctx, job); err != nil {
		log.Warn().Err(err).Str("tryon_id", job.ID).Msg("failed to record job failure")
	}
	log.Error().Str("tryon_id", job.ID).Msg(message)
	return job, errors.New(message)
}

// List returns every job record in the store's natural order.
func (m *Manager) List(ctx context.Context) ([]*models.TryOn, error) {
	return m.store.List(ctx)
}

// Get returns a single job record, or store.ErrNotFound.
func (m *Manager) Get(ctx context.Context, id string) (*models.TryOn, error) {
	return m.store.Get(ctx, id)
}

// Result returns the generated image bytes for a completed job.
func (m *Manager) Result(ctx context.Context, id string) ([]byte, error) {
	job, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status != models.StatusCompleted {
		return nil, &NotCompletedError{Status: job.Status}
	}
	data, err := m.artifacts.Load(ctx, id)
	if errors.Is(err, artifacts.ErrNotFound) {
		return nil, ErrResultMissing
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes the result image if present, then the job record.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if _, err := m.store.Get(ctx, id); err != nil {
		return err
	}
	if err := m.artifacts.Delete(ctx, id); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("tryon_id", id).Msg("try-on deleted")
	return nil
}

func isAllowedContentType(contentType string) bool {
	for _, allowed := range allowedContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
