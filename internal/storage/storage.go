package storage

import (
	"ggtest/internal/config"
	"ggtest/internal/domain"
)

// Storage persists and loads the record of the last run (e.g. for the failures viewer).
type Storage interface {
	Save(record *domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// JSONStorage stores the run record in a JSON file under the test root.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
