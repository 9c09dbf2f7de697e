package models

import "time"

// User is the persisted user record. Timestamps are stamped server-side:
// CreatedAt once on insert, UpdatedAt on every mutation.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
