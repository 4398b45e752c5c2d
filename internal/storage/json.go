package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ggtest/internal/domain"
)

// Save writes the run record to the configured JSON file.
func (s *JSONStorage) Save(record *domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}

	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return nil
}

// Load reads the last run record from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run record: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse run record: %w", err)
	}
	return &record, nil
}
