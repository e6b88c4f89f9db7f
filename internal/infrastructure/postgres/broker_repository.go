package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

var _ repository.BrokerRepository = (*BrokerRepo)(nil)

const brokerColumns = `id, company_name, contact_name, email, phone, address, city, state,
		zip_code, status, created_at, updated_at`

// BrokerRepo implements the BrokerRepository port on PostgreSQL.
type BrokerRepo struct {
	pool *pgxpool.Pool
}

// NewBrokerRepository builds the persistence adapter for brokers.
func NewBrokerRepository(pool *pgxpool.Pool) *BrokerRepo {
	return &BrokerRepo{pool: pool}
}

// Create persists a new broker.
func (r *BrokerRepo) Create(b *entity.Broker) error {
	query := `
		INSERT INTO brokers (id, company_name, contact_name, email, phone, address, city, state,
			zip_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.CompanyName, b.ContactName, b.Email, b.Phone, b.Address, b.City, b.State,
		b.ZipCode, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert broker: %w", err)
	}
	return nil
}

// GetByID fetches a broker by ID.
func (r *BrokerRepo) GetByID(id string) (*entity.Broker, error) {
	query := `SELECT ` + brokerColumns + ` FROM brokers WHERE id = $1`
	b, err := scanBroker(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get broker by id: %w", err)
	}
	return b, nil
}

// List returns brokers ordered by company name.
func (r *BrokerRepo) List(limit, offset int) ([]*entity.Broker, error) {
	query := `SELECT ` + brokerColumns + ` FROM brokers ORDER BY company_name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list brokers: %w", err)
	}
	defer rows.Close()

	var items []*entity.Broker
	for rows.Next() {
		b, err := scanBroker(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// Update persists all mutable broker fields.
func (r *BrokerRepo) Update(b *entity.Broker) error {
	query := `
		UPDATE brokers SET company_name = $2, contact_name = $3, email = $4, phone = $5,
			address = $6, city = $7, state = $8, zip_code = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.CompanyName, b.ContactName, b.Email, b.Phone,
		b.Address, b.City, b.State, b.ZipCode, b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update broker: %w", err)
	}
	return nil
}

// Delete removes a broker.
func (r *BrokerRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM brokers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete broker: %w", err)
	}
	return nil
}

func scanBroker(row rowScanner) (*entity.Broker, error) {
	var b entity.Broker
	err := row.Scan(
		&b.ID, &b.CompanyName, &b.ContactName, &b.Email, &b.Phone, &b.Address, &b.City, &b.State,
		&b.ZipCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
