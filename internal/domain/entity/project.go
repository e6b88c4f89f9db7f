package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project types that modify insurance requirements. Absent/other values
// apply no modifier.
const (
	ProjectTypeCondo    = "condo"
	ProjectTypeHighRise = "high_rise"
	ProjectTypeHazmat   = "hazmat"
)

// Project is a construction project run by a general contractor.
type Project struct {
	ID                string
	ProjectName       string
	ProjectNumber     string
	GCID              string
	OwnerName         string
	ProjectType       string // condo | high_rise | hazmat | ""
	AdditionalInsured []string
	Location          string
	City              string
	State             string
	ZipCode           string
	Status            string
	StartDate         *time.Time
	EndDate           *time.Time
	Budget            decimal.Decimal
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
