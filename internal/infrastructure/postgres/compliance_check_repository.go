package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

var _ repository.ComplianceCheckRepository = (*ComplianceCheckRepo)(nil)

const complianceCheckColumns = `id, subcontractor_id, project_id, check_type, status, result,
		checked_by, notes, created_at, updated_at`

// ComplianceCheckRepo implements the ComplianceCheckRepository port on PostgreSQL.
// Result is stored as JSONB.
type ComplianceCheckRepo struct {
	pool *pgxpool.Pool
}

// NewComplianceCheckRepository builds the persistence adapter for check records.
func NewComplianceCheckRepository(pool *pgxpool.Pool) *ComplianceCheckRepo {
	return &ComplianceCheckRepo{pool: pool}
}

// Create persists one engine run.
func (r *ComplianceCheckRepo) Create(c *entity.ComplianceCheck) error {
	query := `
		INSERT INTO compliance_checks (id, subcontractor_id, project_id, check_type, status, result,
			checked_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.SubcontractorID, c.ProjectID, c.CheckType, c.Status, c.Result,
		nullable(c.CheckedBy), c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compliance check: %w", err)
	}
	return nil
}

// GetByID fetches one check record.
func (r *ComplianceCheckRepo) GetByID(id string) (*entity.ComplianceCheck, error) {
	query := `SELECT ` + complianceCheckColumns + ` FROM compliance_checks WHERE id = $1`
	c, err := scanComplianceCheck(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compliance check by id: %w", err)
	}
	return c, nil
}

// ListBySubcontractor returns check history for an assignment, newest first.
func (r *ComplianceCheckRepo) ListBySubcontractor(subID string, limit, offset int) ([]*entity.ComplianceCheck, error) {
	query := `SELECT ` + complianceCheckColumns + ` FROM compliance_checks
		WHERE subcontractor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, subID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compliance checks: %w", err)
	}
	defer rows.Close()

	var items []*entity.ComplianceCheck
	for rows.Next() {
		c, err := scanComplianceCheck(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanComplianceCheck(row rowScanner) (*entity.ComplianceCheck, error) {
	var (
		c         entity.ComplianceCheck
		checkedBy *string
	)
	err := row.Scan(
		&c.ID, &c.SubcontractorID, &c.ProjectID, &c.CheckType, &c.Status, &c.Result,
		&checkedBy, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if checkedBy != nil {
		c.CheckedBy = *checkedBy
	}
	return &c, nil
}
