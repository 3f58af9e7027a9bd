package artifacts

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no artifact exists for the id.
var ErrNotFound = errors.New("result image not found")

// ArtifactStore persists generated result images, one per job id.
// Delete tolerates a missing artifact; only the job record decides
// whether an id is known.
type ArtifactStore interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
