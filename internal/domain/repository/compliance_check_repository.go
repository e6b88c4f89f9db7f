package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// ComplianceCheckRepository persistence port for engine run records.
type ComplianceCheckRepository interface {
	Create(c *entity.ComplianceCheck) error
	GetByID(id string) (*entity.ComplianceCheck, error)
	ListBySubcontractor(subID string, limit, offset int) ([]*entity.ComplianceCheck, error)
}
