package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// ContractorRepository persistence port for contractors (GCs and subs).
type ContractorRepository interface {
	Create(c *entity.Contractor) error
	GetByID(id string) (*entity.Contractor, error)
	List(contractorType string, limit, offset int) ([]*entity.Contractor, error)
	Update(c *entity.Contractor) error
	Delete(id string) error
}
