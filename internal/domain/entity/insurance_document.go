package entity

import "time"

// InsuranceDocument is an uploaded policy or certificate file attached to a
// project subcontractor.
type InsuranceDocument struct {
	ID              string
	SubcontractorID string // ProjectSubcontractor ID
	ProjectID       string
	DocumentType    string // coi, policy, endorsement, hold_harmless
	FileName        string
	FileURL         string
	FileSize        int64
	PolicyNumber    string
	EffectiveDate   *time.Time
	ExpirationDate  *time.Time
	Status          string // pending, approved, rejected
	ApprovalStatus  string
	UploadedBy      string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
