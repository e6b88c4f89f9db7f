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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, project_name, project_number, gc_id, owner_name, project_type,
		additional_insured, location, city, state, zip_code, status, start_date, end_date,
		budget, description, created_at, updated_at`

// ProjectRepo implements the ProjectRepository port on PostgreSQL.
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository builds the persistence adapter for projects.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// Create persists a new project.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (id, project_name, project_number, gc_id, owner_name, project_type,
			additional_insured, location, city, state, zip_code, status, start_date, end_date,
			budget, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.ProjectName, p.ProjectNumber, p.GCID, p.OwnerName, p.ProjectType,
		p.AdditionalInsured, p.Location, p.City, p.State, p.ZipCode, p.Status,
		p.StartDate, p.EndDate, p.Budget, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project by ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

// ListByGC returns the projects owned by one general contractor.
func (r *ProjectRepo) ListByGC(gcID string, limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE gc_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, gcID, limit, offset)
}

// List returns all projects.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Update persists all mutable project fields.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects SET project_name = $2, project_number = $3, owner_name = $4, project_type = $5,
			additional_insured = $6, location = $7, city = $8, state = $9, zip_code = $10,
			status = $11, start_date = $12, end_date = $13, budget = $14, description = $15,
			updated_at = $16
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.ProjectName, p.ProjectNumber, p.OwnerName, p.ProjectType,
		p.AdditionalInsured, p.Location, p.City, p.State, p.ZipCode,
		p.Status, p.StartDate, p.EndDate, p.Budget, p.Description,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) list(query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func scanProject(row rowScanner) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.ProjectName, &p.ProjectNumber, &p.GCID, &p.OwnerName, &p.ProjectType,
		&p.AdditionalInsured, &p.Location, &p.City, &p.State, &p.ZipCode, &p.Status,
		&p.StartDate, &p.EndDate, &p.Budget, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
