package entity

import "time"

// Contractor types.
const (
	ContractorTypeGC  = "general_contractor"
	ContractorTypeSub = "subcontractor"
)

// Contractor is a construction company: either a general contractor or a
// subcontractor. Subcontractors are attached to projects through
// ProjectSubcontractor.
type Contractor struct {
	ID                string
	CompanyName       string
	ContractorType    string // general_contractor | subcontractor
	Email             string
	Phone             string
	Address           string
	City              string
	State             string
	ZipCode           string
	Status            string // active, inactive
	InsuranceVerified bool
	ComplianceStatus  string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
