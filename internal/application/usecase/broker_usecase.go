package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// BrokerUseCase business rules for insurance brokers.
type BrokerUseCase struct {
	repo repository.BrokerRepository
}

// NewBrokerUseCase builds the use case with the persistence port.
func NewBrokerUseCase(repo repository.BrokerRepository) *BrokerUseCase {
	return &BrokerUseCase{repo: repo}
}

// Create registers a broker.
func (uc *BrokerUseCase) Create(in dto.CreateBrokerRequest) (*dto.BrokerResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Broker{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBrokerResponse(b), nil
}

// GetByID fetches a broker.
func (uc *BrokerUseCase) GetByID(id string) (*dto.BrokerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBrokerResponse(b), nil
}

// List returns brokers.
func (uc *BrokerUseCase) List(page dto.PageRequest) ([]*dto.BrokerResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BrokerResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBrokerResponse(b))
	}
	return out, nil
}

// Update applies editable fields to an existing broker.
func (uc *BrokerUseCase) Update(id string, in dto.CreateBrokerRequest) (*dto.BrokerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != "" {
		b.CompanyName = in.CompanyName
	}
	b.ContactName = in.ContactName
	b.Email = in.Email
	b.Phone = in.Phone
	b.Address = in.Address
	b.City = in.City
	b.State = in.State
	b.ZipCode = in.ZipCode
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBrokerResponse(b), nil
}

// Delete removes a broker.
func (uc *BrokerUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBrokerResponse(b *entity.Broker) *dto.BrokerResponse {
	if b == nil {
		return nil
	}
	return &dto.BrokerResponse{
		ID:          b.ID,
		CompanyName: b.CompanyName,
		ContactName: b.ContactName,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		City:        b.City,
		State:       b.State,
		ZipCode:     b.ZipCode,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
