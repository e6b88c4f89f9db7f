package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// GeneratedCOIRepository persistence port for platform-generated certificates.
type GeneratedCOIRepository interface {
	Create(c *entity.GeneratedCOI) error
	GetByID(id string) (*entity.GeneratedCOI, error)
	// GetLatestForSubcontractor returns the most recent certificate for a
	// project subcontractor, or nil when none exists.
	GetLatestForSubcontractor(subID string) (*entity.GeneratedCOI, error)
	Update(c *entity.GeneratedCOI) error
	ListByProject(projectID string, limit, offset int) ([]*entity.GeneratedCOI, error)
}
