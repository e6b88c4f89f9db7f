package entity

import "time"

// Broker is an insurance broker acting for one or more subcontractors.
type Broker struct {
	ID          string
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
