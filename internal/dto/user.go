package dto

import (
	"time"

	"backend/internal/domain/models"
)

// UserDTO is the boundary representation of a user. Timestamps are
// response-only; whatever a client sends for them is discarded by the
// mapping functions below.
type UserDTO struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func UserFromEntity(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func UsersFromEntities(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromEntity(u))
	}
	return out
}

// ToEntity builds a fresh entity from client input. Timestamps are left
// zero on purpose; the service stamps them.
func (d UserDTO) ToEntity() models.User {
	return models.User{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
	}
}

// ApplyTo overwrites the mutable fields of an existing entity.
// ID and CreatedAt stay untouched.
func (d UserDTO) ApplyTo(u *models.User) {
	u.FirstName = d.FirstName
	u.LastName = d.LastName
	u.Email = d.Email
	u.Phone = d.Phone
}
