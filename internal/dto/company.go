package dto

import (
	"time"

	"backend/internal/domain/models"
)

type CompanyDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func CompanyFromEntity(c models.Company) CompanyDTO {
	return CompanyDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func CompaniesFromEntities(companies []models.Company) []CompanyDTO {
	out := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyFromEntity(c))
	}
	return out
}

func (d CompanyDTO) ToEntity() models.Company {
	return models.Company{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
	}
}

func (d CompanyDTO) ApplyTo(c *models.Company) {
	c.Name = d.Name
	c.Email = d.Email
	c.Phone = d.Phone
}
