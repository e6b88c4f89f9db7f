package dto

import (
	"time"

	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// CheckComplianceRequest runs the engine for one project subcontractor.
// The COI snapshot is optional; when absent the latest certificate on file
// is evaluated. Project and trades are loaded from the assignment.
type CheckComplianceRequest struct {
	COI   compliance.COI `json:"coi"`
	Notes string         `json:"notes"`
}

// ComplianceReport is the merged admin-facing report from all three passes.
type ComplianceReport struct {
	Status        string                          `json:"status"`
	Requirements  *compliance.Result              `json:"requirements"`
	TradeCoverage *compliance.TradeCoverageResult `json:"trade_coverage"`
	Restrictions  []compliance.Issue              `json:"restrictions"`
}

// ComplianceCheckResponse persisted record of one engine run.
type ComplianceCheckResponse struct {
	ID              string            `json:"id"`
	SubcontractorID string            `json:"subcontractor_id"`
	ProjectID       string            `json:"project_id"`
	CheckType       string            `json:"check_type"`
	Status          string            `json:"status"`
	Report          *ComplianceReport `json:"report,omitempty"`
	CheckedBy       string            `json:"checked_by,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
