package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// InsuranceDocumentRepository persistence port for uploaded policy files.
type InsuranceDocumentRepository interface {
	Create(d *entity.InsuranceDocument) error
	GetByID(id string) (*entity.InsuranceDocument, error)
	ListBySubcontractor(subID string, limit, offset int) ([]*entity.InsuranceDocument, error)
	Update(d *entity.InsuranceDocument) error
	Delete(id string) error
}
