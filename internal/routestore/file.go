package routestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dutchev/chargemap/internal/models"
)

// FileStore persists the route table as a single JSON object of
// {routeKey: geometry} in one file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save writes the whole table, replacing any previous content.
func (s *FileStore) Save(ctx context.Context, table map[string]*models.RouteGeometry) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("route table marshal failed: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("route table write failed: %w", err)
	}
	return nil
}

// Load reads the table back. A missing file is not an error; it loads as
// an empty table.
func (s *FileStore) Load(ctx context.Context) (map[string]*models.RouteGeometry, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return map[string]*models.RouteGeometry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("route table read failed: %w", err)
	}
	table := make(map[string]*models.RouteGeometry)
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("route table decode failed: %w", err)
	}
	return table, nil
}
