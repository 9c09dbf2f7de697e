package models

import "time"

// Company has no updated_at column; only creation is tracked.
type Company struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
