package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractorRequest payload for creating/updating a contractor.
type CreateContractorRequest struct {
	CompanyName    string `json:"company_name"`
	ContractorType string `json:"contractor_type"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
	Notes          string `json:"notes"`
}

// ContractorResponse public view of a contractor.
type ContractorResponse struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"company_name"`
	ContractorType    string    `json:"contractor_type"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	ZipCode           string    `json:"zip_code,omitempty"`
	Status            string    `json:"status"`
	InsuranceVerified bool      `json:"insurance_verified"`
	ComplianceStatus  string    `json:"compliance_status,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateProjectRequest payload for creating/updating a project.
type CreateProjectRequest struct {
	ProjectName       string          `json:"project_name"`
	ProjectNumber     string          `json:"project_number"`
	GCID              string          `json:"gc_id"`
	OwnerName         string          `json:"owner_name"`
	ProjectType       string          `json:"project_type"`
	AdditionalInsured []string        `json:"additional_insured"`
	Location          string          `json:"location"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	ZipCode           string          `json:"zip_code"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
	Budget            decimal.Decimal `json:"budget"`
	Description       string          `json:"description"`
}

// ProjectResponse public view of a project.
type ProjectResponse struct {
	ID                string          `json:"id"`
	ProjectName       string          `json:"project_name"`
	ProjectNumber     string          `json:"project_number,omitempty"`
	GCID              string          `json:"gc_id,omitempty"`
	OwnerName         string          `json:"owner_name,omitempty"`
	ProjectType       string          `json:"project_type,omitempty"`
	AdditionalInsured []string        `json:"additional_insured,omitempty"`
	Location          string          `json:"location,omitempty"`
	City              string          `json:"city,omitempty"`
	State             string          `json:"state,omitempty"`
	ZipCode           string          `json:"zip_code,omitempty"`
	Status            string          `json:"status"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	EndDate           *time.Time      `json:"end_date,omitempty"`
	Budget            decimal.Decimal `json:"budget"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AssignSubcontractorRequest attaches a subcontractor to a project.
type AssignSubcontractorRequest struct {
	SubcontractorID string   `json:"subcontractor_id"`
	CompanyName     string   `json:"company_name"`
	ContactName     string   `json:"contact_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	BrokerID        string   `json:"broker_id"`
	Trades          []string `json:"trades"`
	Notes           string   `json:"notes"`
}

// ProjectSubcontractorResponse public view of a project assignment.
type ProjectSubcontractorResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	SubcontractorID  string    `json:"subcontractor_id,omitempty"`
	CompanyName      string    `json:"company_name"`
	ContactName      string    `json:"contact_name,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	BrokerID         string    `json:"broker_id,omitempty"`
	Trades           []string  `json:"trades"`
	Status           string    `json:"status"`
	ComplianceStatus string    `json:"compliance_status,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateBrokerRequest payload for creating/updating a broker.
type CreateBrokerRequest struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
}

// BrokerResponse public view of a broker.
type BrokerResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zip_code,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTradeRequest payload for the trade catalog.
type CreateTradeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// TradeResponse public view of a trade.
type TradeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tier        int       `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
