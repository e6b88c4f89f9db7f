package entity

import "time"

// ComplianceCheck is one recorded run of the compliance engine against a
// project subcontractor. Result holds the full engine output as JSON.
type ComplianceCheck struct {
	ID              string
	SubcontractorID string // ProjectSubcontractor ID
	ProjectID       string
	CheckType       string // requirements, trade_coverage, full
	Status          string // compliance status derived from the result
	Result          []byte // JSON: issues, warnings, requirements applied
	CheckedBy       string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
