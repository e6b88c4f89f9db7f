package entity

import "time"

// Compliance statuses persisted on a ProjectSubcontractor after a check.
// pending_broker and pending_hold_harmless are set by the document workflows,
// the rest by the compliance engine result.
const (
	ComplianceStatusCompliant           = "compliant"
	ComplianceStatusNonCompliant        = "non_compliant"
	ComplianceStatusExpiringSoon        = "expiring_soon"
	ComplianceStatusPendingBroker       = "pending_broker"
	ComplianceStatusPendingHoldHarmless = "pending_hold_harmless"
)

// ProjectSubcontractor links a subcontractor to a project with its assigned
// trades and current compliance state.
type ProjectSubcontractor struct {
	ID               string
	ProjectID        string
	SubcontractorID  string
	CompanyName      string
	ContactName      string
	Email            string
	Phone            string
	BrokerID         string
	Trades           []string // trade names, evaluated by the compliance engine
	Status           string   // pending, active, removed
	ComplianceStatus string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
