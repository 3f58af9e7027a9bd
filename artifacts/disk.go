package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore writes result images under a local results directory,
// created on demand.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Path returns the on-disk location of a job's result image.
func (s *DiskStore) Path(id string) string {
	return filepath.Join(s.dir, fmt.Sprintf("result_%s.png", id))
}

func (s *DiskStore) Save(ctx context.Context, id string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}
	if err := os.WriteFile(s.Path(id), data, 0o644); err != nil {
		return fmt.Errorf("failed to write result image: %w", err)
	}
	return nil
}

func (s *DiskStore) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *DiskStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.Path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ ArtifactStore = (*DiskStore)(nil)
