package entity

import "time"

// Trade is a construction trade (electrical, roofing, ...). The compliance
// engine carries its own trade-to-tier table; this entity exists for the CRUD
// surface and assignment UI.
type Trade struct {
	ID          string
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
