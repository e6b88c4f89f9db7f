package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
)

var _ repository.ProjectSubcontractorRepository = (*ProjectSubcontractorRepo)(nil)

const projectSubColumns = `id, project_id, subcontractor_id, company_name, contact_name, email,
		phone, broker_id, trades, status, compliance_status, notes, created_at, updated_at`

// ProjectSubcontractorRepo implements the ProjectSubcontractorRepository port on PostgreSQL.
type ProjectSubcontractorRepo struct {
	pool *pgxpool.Pool
}

// NewProjectSubcontractorRepository builds the persistence adapter for project assignments.
func NewProjectSubcontractorRepository(pool *pgxpool.Pool) *ProjectSubcontractorRepo {
	return &ProjectSubcontractorRepo{pool: pool}
}

// Create persists a new assignment.
func (r *ProjectSubcontractorRepo) Create(ps *entity.ProjectSubcontractor) error {
	query := `
		INSERT INTO project_subcontractors (id, project_id, subcontractor_id, company_name, contact_name,
			email, phone, broker_id, trades, status, compliance_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		ps.ID, ps.ProjectID, nullable(ps.SubcontractorID), ps.CompanyName, ps.ContactName,
		ps.Email, ps.Phone, nullable(ps.BrokerID), ps.Trades, ps.Status,
		ps.ComplianceStatus, ps.Notes, ps.CreatedAt, ps.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project subcontractor: %w", err)
	}
	return nil
}

// GetByID fetches one assignment by ID.
func (r *ProjectSubcontractorRepo) GetByID(id string) (*entity.ProjectSubcontractor, error) {
	query := `SELECT ` + projectSubColumns + ` FROM project_subcontractors WHERE id = $1`
	ps, err := scanProjectSub(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project subcontractor by id: %w", err)
	}
	return ps, nil
}

// ListByProject returns the subcontractors attached to a project.
func (r *ProjectSubcontractorRepo) ListByProject(projectID string, limit, offset int) ([]*entity.ProjectSubcontractor, error) {
	query := `SELECT ` + projectSubColumns + ` FROM project_subcontractors
		WHERE project_id = $1 ORDER BY company_name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list project subcontractors: %w", err)
	}
	defer rows.Close()

	var items []*entity.ProjectSubcontractor
	for rows.Next() {
		ps, err := scanProjectSub(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ps)
	}
	return items, rows.Err()
}

// Update persists all mutable assignment fields.
func (r *ProjectSubcontractorRepo) Update(ps *entity.ProjectSubcontractor) error {
	query := `
		UPDATE project_subcontractors SET company_name = $2, contact_name = $3, email = $4, phone = $5,
			broker_id = $6, trades = $7, status = $8, compliance_status = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		ps.ID, ps.CompanyName, ps.ContactName, ps.Email, ps.Phone,
		nullable(ps.BrokerID), ps.Trades, ps.Status, ps.ComplianceStatus, ps.Notes, ps.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project subcontractor: %w", err)
	}
	return nil
}

// UpdateComplianceStatus writes only the compliance_status column.
func (r *ProjectSubcontractorRepo) UpdateComplianceStatus(id, status string) error {
	query := `UPDATE project_subcontractors SET compliance_status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update compliance status: %w", err)
	}
	return nil
}

// Delete removes an assignment.
func (r *ProjectSubcontractorRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM project_subcontractors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project subcontractor: %w", err)
	}
	return nil
}

func scanProjectSub(row rowScanner) (*entity.ProjectSubcontractor, error) {
	var (
		ps                entity.ProjectSubcontractor
		subID, brokerID *string
	)
	err := row.Scan(
		&ps.ID, &ps.ProjectID, &subID, &ps.CompanyName, &ps.ContactName, &ps.Email,
		&ps.Phone, &brokerID, &ps.Trades, &ps.Status, &ps.ComplianceStatus, &ps.Notes,
		&ps.CreatedAt, &ps.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if subID != nil {
		ps.SubcontractorID = *subID
	}
	if brokerID != nil {
		ps.BrokerID = *brokerID
	}
	return &ps, nil
}
