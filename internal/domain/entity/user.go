package entity

import "time"

// Application roles. GC/broker/subcontractor users see their own dashboard;
// admin and super_admin manage everything.
const (
	RoleSuperAdmin    = "super_admin"
	RoleAdmin         = "admin"
	RoleGC            = "gc"
	RoleBroker        = "broker"
	RoleSubcontractor = "subcontractor"
)

// User is an account able to log into the platform.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string // active, suspended
	FirstName    string
	LastName     string
	Phone        string
	ContractorID string // set for gc/subcontractor users; links the account to its company
	// Password reset flow: single-use token with expiry, cleared on use.
	ResetToken        string
	ResetTokenExpires *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
