package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// BrokerRepository persistence port for insurance brokers.
type BrokerRepository interface {
	Create(b *entity.Broker) error
	GetByID(id string) (*entity.Broker, error)
	List(limit, offset int) ([]*entity.Broker, error)
	Update(b *entity.Broker) error
	Delete(id string) error
}
