package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// ProjectSubcontractorRepository persistence port for project assignments.
type ProjectSubcontractorRepository interface {
	Create(ps *entity.ProjectSubcontractor) error
	GetByID(id string) (*entity.ProjectSubcontractor, error)
	ListByProject(projectID string, limit, offset int) ([]*entity.ProjectSubcontractor, error)
	Update(ps *entity.ProjectSubcontractor) error
	// UpdateComplianceStatus writes only the compliance_status column.
	UpdateComplianceStatus(id, status string) error
	Delete(id string) error
}
