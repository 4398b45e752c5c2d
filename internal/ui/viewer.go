package ui

import "ggtest/internal/domain"

// Viewer displays the failed cases of a run
type Viewer interface {
	View(record *domain.RunRecord) error
}
