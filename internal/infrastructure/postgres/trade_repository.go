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

var _ repository.TradeRepository = (*TradeRepo)(nil)

const tradeColumns = `id, name, description, category, created_at, updated_at`

// TradeRepo implements the TradeRepository port on PostgreSQL.
type TradeRepo struct {
	pool *pgxpool.Pool
}

// NewTradeRepository builds the persistence adapter for the trade catalog.
func NewTradeRepository(pool *pgxpool.Pool) *TradeRepo {
	return &TradeRepo{pool: pool}
}

// Create persists a new trade.
func (r *TradeRepo) Create(t *entity.Trade) error {
	query := `
		INSERT INTO trades (id, name, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Name, t.Description, t.Category, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// GetByID fetches a trade by ID.
func (r *TradeRepo) GetByID(id string) (*entity.Trade, error) {
	return r.getOne(`SELECT `+tradeColumns+` FROM trades WHERE id = $1`, id)
}

// GetByName fetches a trade by its (case-insensitive) name.
func (r *TradeRepo) GetByName(name string) (*entity.Trade, error) {
	return r.getOne(`SELECT `+tradeColumns+` FROM trades WHERE LOWER(name) = LOWER($1) LIMIT 1`, name)
}

// List returns the trade catalog ordered by name.
func (r *TradeRepo) List(limit, offset int) ([]*entity.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var items []*entity.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// Update persists all mutable trade fields.
func (r *TradeRepo) Update(t *entity.Trade) error {
	query := `UPDATE trades SET name = $2, description = $3, category = $4, updated_at = $5 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Name, t.Description, t.Category, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update trade: %w", err)
	}
	return nil
}

// Delete removes a trade.
func (r *TradeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}

func (r *TradeRepo) getOne(query string, arg any) (*entity.Trade, error) {
	t, err := scanTrade(r.pool.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trade: %w", err)
	}
	return t, nil
}

func scanTrade(row rowScanner) (*entity.Trade, error) {
	var t entity.Trade
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
