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

var _ repository.InsuranceDocumentRepository = (*InsuranceDocumentRepo)(nil)

const insuranceDocColumns = `id, subcontractor_id, project_id, document_type, file_name, file_url,
		file_size, policy_number, effective_date, expiration_date, status, approval_status,
		uploaded_by, notes, created_at, updated_at`

// InsuranceDocumentRepo implements the InsuranceDocumentRepository port on PostgreSQL.
type InsuranceDocumentRepo struct {
	pool *pgxpool.Pool
}

// NewInsuranceDocumentRepository builds the persistence adapter for uploaded documents.
func NewInsuranceDocumentRepository(pool *pgxpool.Pool) *InsuranceDocumentRepo {
	return &InsuranceDocumentRepo{pool: pool}
}

// Create persists a new document record.
func (r *InsuranceDocumentRepo) Create(d *entity.InsuranceDocument) error {
	query := `
		INSERT INTO insurance_documents (id, subcontractor_id, project_id, document_type, file_name,
			file_url, file_size, policy_number, effective_date, expiration_date, status,
			approval_status, uploaded_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.SubcontractorID, d.ProjectID, d.DocumentType, d.FileName,
		d.FileURL, d.FileSize, d.PolicyNumber, d.EffectiveDate, d.ExpirationDate, d.Status,
		d.ApprovalStatus, nullable(d.UploadedBy), d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert insurance document: %w", err)
	}
	return nil
}

// GetByID fetches a document record by ID.
func (r *InsuranceDocumentRepo) GetByID(id string) (*entity.InsuranceDocument, error) {
	query := `SELECT ` + insuranceDocColumns + ` FROM insurance_documents WHERE id = $1`
	d, err := scanInsuranceDoc(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance document by id: %w", err)
	}
	return d, nil
}

// ListBySubcontractor returns the documents on file for an assignment.
func (r *InsuranceDocumentRepo) ListBySubcontractor(subID string, limit, offset int) ([]*entity.InsuranceDocument, error) {
	query := `SELECT ` + insuranceDocColumns + ` FROM insurance_documents
		WHERE subcontractor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, subID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list insurance documents: %w", err)
	}
	defer rows.Close()

	var items []*entity.InsuranceDocument
	for rows.Next() {
		d, err := scanInsuranceDoc(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// Update persists all mutable document fields.
func (r *InsuranceDocumentRepo) Update(d *entity.InsuranceDocument) error {
	query := `
		UPDATE insurance_documents SET document_type = $2, file_name = $3, file_url = $4,
			file_size = $5, policy_number = $6, effective_date = $7, expiration_date = $8,
			status = $9, approval_status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.DocumentType, d.FileName, d.FileURL,
		d.FileSize, d.PolicyNumber, d.EffectiveDate, d.ExpirationDate,
		d.Status, d.ApprovalStatus, d.Notes, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insurance document: %w", err)
	}
	return nil
}

// Delete removes a document record.
func (r *InsuranceDocumentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM insurance_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insurance document: %w", err)
	}
	return nil
}

func scanInsuranceDoc(row rowScanner) (*entity.InsuranceDocument, error) {
	var (
		d          entity.InsuranceDocument
		uploadedBy *string
	)
	err := row.Scan(
		&d.ID, &d.SubcontractorID, &d.ProjectID, &d.DocumentType, &d.FileName, &d.FileURL,
		&d.FileSize, &d.PolicyNumber, &d.EffectiveDate, &d.ExpirationDate, &d.Status,
		&d.ApprovalStatus, &uploadedBy, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if uploadedBy != nil {
		d.UploadedBy = *uploadedBy
	}
	return &d, nil
}
