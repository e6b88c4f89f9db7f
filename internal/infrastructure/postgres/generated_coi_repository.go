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

var _ repository.GeneratedCOIRepository = (*GeneratedCOIRepo)(nil)

const generatedCOIColumns = `id, project_id, subcontractor_id, status, first_coi_url,
		regenerated_coi_url, first_coi_filename, regenerated_coi_filename, expiration_date,
		snapshot, created_by, created_at, updated_at`

// GeneratedCOIRepo implements the GeneratedCOIRepository port on PostgreSQL.
type GeneratedCOIRepo struct {
	pool *pgxpool.Pool
}

// NewGeneratedCOIRepository builds the persistence adapter for generated certificates.
func NewGeneratedCOIRepository(pool *pgxpool.Pool) *GeneratedCOIRepo {
	return &GeneratedCOIRepo{pool: pool}
}

// Create persists a new certificate record.
func (r *GeneratedCOIRepo) Create(c *entity.GeneratedCOI) error {
	query := `
		INSERT INTO generated_cois (id, project_id, subcontractor_id, status, first_coi_url,
			regenerated_coi_url, first_coi_filename, regenerated_coi_filename, expiration_date,
			snapshot, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.ProjectID, c.SubcontractorID, c.Status, c.FirstCOIURL,
		nullable(c.RegeneratedCOIURL), c.FirstCOIFilename, nullable(c.RegeneratedCOIFilename),
		c.ExpirationDate, c.Snapshot, nullable(c.CreatedBy), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert generated coi: %w", err)
	}
	return nil
}

// GetByID fetches a certificate record by ID.
func (r *GeneratedCOIRepo) GetByID(id string) (*entity.GeneratedCOI, error) {
	query := `SELECT ` + generatedCOIColumns + ` FROM generated_cois WHERE id = $1`
	c, err := scanGeneratedCOI(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get generated coi by id: %w", err)
	}
	return c, nil
}

// GetLatestForSubcontractor returns the most recent certificate for a project
// subcontractor, or nil when none exists.
func (r *GeneratedCOIRepo) GetLatestForSubcontractor(subID string) (*entity.GeneratedCOI, error) {
	query := `SELECT ` + generatedCOIColumns + ` FROM generated_cois
		WHERE subcontractor_id = $1 ORDER BY created_at DESC LIMIT 1`
	c, err := scanGeneratedCOI(r.pool.QueryRow(context.Background(), query, subID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest generated coi: %w", err)
	}
	return c, nil
}

// Update persists all mutable certificate fields.
func (r *GeneratedCOIRepo) Update(c *entity.GeneratedCOI) error {
	query := `
		UPDATE generated_cois SET status = $2, first_coi_url = $3, regenerated_coi_url = $4,
			first_coi_filename = $5, regenerated_coi_filename = $6, expiration_date = $7,
			snapshot = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Status, c.FirstCOIURL, nullable(c.RegeneratedCOIURL),
		c.FirstCOIFilename, nullable(c.RegeneratedCOIFilename), c.ExpirationDate,
		c.Snapshot, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update generated coi: %w", err)
	}
	return nil
}

// ListByProject returns the certificates issued for a project, newest first.
func (r *GeneratedCOIRepo) ListByProject(projectID string, limit, offset int) ([]*entity.GeneratedCOI, error) {
	query := `SELECT ` + generatedCOIColumns + ` FROM generated_cois
		WHERE project_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list generated cois: %w", err)
	}
	defer rows.Close()

	var items []*entity.GeneratedCOI
	for rows.Next() {
		c, err := scanGeneratedCOI(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanGeneratedCOI(row rowScanner) (*entity.GeneratedCOI, error) {
	var (
		c                               entity.GeneratedCOI
		regenURL, regenFile, createdBy *string
	)
	err := row.Scan(
		&c.ID, &c.ProjectID, &c.SubcontractorID, &c.Status, &c.FirstCOIURL,
		&regenURL, &c.FirstCOIFilename, &regenFile, &c.ExpirationDate,
		&c.Snapshot, &createdBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if regenURL != nil {
		c.RegeneratedCOIURL = *regenURL
	}
	if regenFile != nil {
		c.RegeneratedCOIFilename = *regenFile
	}
	if createdBy != nil {
		c.CreatedBy = *createdBy
	}
	return &c, nil
}
