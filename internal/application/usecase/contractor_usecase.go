package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// ContractorUseCase business rules for GC and subcontractor companies.
type ContractorUseCase struct {
	repo repository.ContractorRepository
}

// NewContractorUseCase builds the use case with the persistence port.
func NewContractorUseCase(repo repository.ContractorRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo}
}

// Create registers a contractor company.
func (uc *ContractorUseCase) Create(in dto.CreateContractorRequest) (*dto.ContractorResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	ctype := in.ContractorType
	if ctype == "" {
		ctype = entity.ContractorTypeSub
	}
	now := time.Now()
	c := &entity.Contractor{
		ID:             uuid.New().String(),
		CompanyName:    in.CompanyName,
		ContractorType: ctype,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		Status:         "active",
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContractorResponse(c), nil
}

// GetByID fetches a contractor.
func (uc *ContractorUseCase) GetByID(id string) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContractorResponse(c), nil
}

// List returns contractors, optionally filtered by type (gc or subcontractor).
func (uc *ContractorUseCase) List(contractorType string, page dto.PageRequest) ([]*dto.ContractorResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(contractorType, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractorResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toContractorResponse(c))
	}
	return out, nil
}

// Update applies editable fields to an existing contractor.
func (uc *ContractorUseCase) Update(id string, in dto.CreateContractorRequest) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != "" {
		c.CompanyName = in.CompanyName
	}
	if in.ContractorType != "" {
		c.ContractorType = in.ContractorType
	}
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.ZipCode = in.ZipCode
	c.Notes = in.Notes
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContractorResponse(c), nil
}

// Delete removes a contractor.
func (uc *ContractorUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContractorResponse(c *entity.Contractor) *dto.ContractorResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractorResponse{
		ID:                c.ID,
		CompanyName:       c.CompanyName,
		ContractorType:    c.ContractorType,
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		City:              c.City,
		State:             c.State,
		ZipCode:           c.ZipCode,
		Status:            c.Status,
		InsuranceVerified: c.InsuranceVerified,
		ComplianceStatus:  c.ComplianceStatus,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
