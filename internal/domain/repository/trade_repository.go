package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// TradeRepository persistence port for the trade catalog.
type TradeRepository interface {
	Create(t *entity.Trade) error
	GetByID(id string) (*entity.Trade, error)
	GetByName(name string) (*entity.Trade, error)
	List(limit, offset int) ([]*entity.Trade, error)
	Update(t *entity.Trade) error
	Delete(id string) error
}
