package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

// TradeUseCase business rules for the trade catalog. Responses carry the
// risk tier the compliance engine assigns to each trade.
type TradeUseCase struct {
	repo repository.TradeRepository
}

// NewTradeUseCase builds the use case with the persistence port.
func NewTradeUseCase(repo repository.TradeRepository) *TradeUseCase {
	return &TradeUseCase{repo: repo}
}

// Create registers a trade. Duplicate names are rejected.
func (uc *TradeUseCase) Create(in dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	t := &entity.Trade{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTradeResponse(t), nil
}

// GetByID fetches a trade.
func (uc *TradeUseCase) GetByID(id string) (*dto.TradeResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTradeResponse(t), nil
}

// List returns the trade catalog.
func (uc *TradeUseCase) List(page dto.PageRequest) ([]*dto.TradeResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TradeResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTradeResponse(t))
	}
	return out, nil
}

// Update applies editable fields to an existing trade.
func (uc *TradeUseCase) Update(id string, in dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		t.Name = in.Name
	}
	t.Description = in.Description
	t.Category = in.Category
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTradeResponse(t), nil
}

// Delete removes a trade from the catalog.
func (uc *TradeUseCase) Delete(id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTradeResponse(t *entity.Trade) *dto.TradeResponse {
	if t == nil {
		return nil
	}
	return &dto.TradeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Tier:        compliance.TradeTier(t.Name),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
