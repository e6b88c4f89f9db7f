package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// ProjectRepository persistence port for projects.
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByGC(gcID string, limit, offset int) ([]*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	Update(p *entity.Project) error
	Delete(id string) error
}
