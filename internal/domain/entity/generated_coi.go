package entity

import "time"

// GeneratedCOI is a certificate produced by the platform (ACORD 25 PDF, plus
// the optional ACORD XML export). Regeneration keeps the first file around.
type GeneratedCOI struct {
	ID                     string
	ProjectID              string
	SubcontractorID        string // ProjectSubcontractor ID
	Status                 string // draft, issued, superseded
	FirstCOIURL            string
	RegeneratedCOIURL      string
	FirstCOIFilename       string
	RegeneratedCOIFilename string
	ExpirationDate         *time.Time
	Snapshot               []byte // compliance.COI JSON captured at generation time
	CreatedBy              string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
