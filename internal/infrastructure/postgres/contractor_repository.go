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

var _ repository.ContractorRepository = (*ContractorRepo)(nil)

const contractorColumns = `id, company_name, contractor_type, email, phone, address, city, state,
		zip_code, status, insurance_verified, compliance_status, notes, created_at, updated_at`

// ContractorRepo implements the ContractorRepository port on PostgreSQL.
type ContractorRepo struct {
	pool *pgxpool.Pool
}

// NewContractorRepository builds the persistence adapter for contractors.
func NewContractorRepository(pool *pgxpool.Pool) *ContractorRepo {
	return &ContractorRepo{pool: pool}
}

// Create persists a new contractor.
func (r *ContractorRepo) Create(c *entity.Contractor) error {
	query := `
		INSERT INTO contractors (id, company_name, contractor_type, email, phone, address, city, state,
			zip_code, status, insurance_verified, compliance_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.CompanyName, c.ContractorType, c.Email, c.Phone, c.Address, c.City, c.State,
		c.ZipCode, c.Status, c.InsuranceVerified, c.ComplianceStatus, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contractor: %w", err)
	}
	return nil
}

// GetByID fetches a contractor by ID.
func (r *ContractorRepo) GetByID(id string) (*entity.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors WHERE id = $1`
	c, err := scanContractor(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contractor by id: %w", err)
	}
	return c, nil
}

// List returns contractors, optionally filtered by type.
func (r *ContractorRepo) List(contractorType string, limit, offset int) ([]*entity.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors`
	args := []any{}
	if contractorType != "" {
		query += ` WHERE contractor_type = $1 ORDER BY company_name LIMIT $2 OFFSET $3`
		args = append(args, contractorType, limit, offset)
	} else {
		query += ` ORDER BY company_name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer rows.Close()

	var items []*entity.Contractor
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Update persists all mutable contractor fields.
func (r *ContractorRepo) Update(c *entity.Contractor) error {
	query := `
		UPDATE contractors SET company_name = $2, contractor_type = $3, email = $4, phone = $5,
			address = $6, city = $7, state = $8, zip_code = $9, status = $10,
			insurance_verified = $11, compliance_status = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.CompanyName, c.ContractorType, c.Email, c.Phone,
		c.Address, c.City, c.State, c.ZipCode, c.Status,
		c.InsuranceVerified, c.ComplianceStatus, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contractor: %w", err)
	}
	return nil
}

// Delete removes a contractor.
func (r *ContractorRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM contractors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contractor: %w", err)
	}
	return nil
}

func scanContractor(row rowScanner) (*entity.Contractor, error) {
	var c entity.Contractor
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.ContractorType, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.ZipCode, &c.Status, &c.InsuranceVerified, &c.ComplianceStatus, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
