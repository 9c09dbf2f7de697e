package services

import (
	"context"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/dto"
)

// CompanyStore is the persistence contract the company service depends on.
// repositories.CompanyRepository implements it.
type CompanyStore interface {
	Save(ctx context.Context, c models.Company) (models.Company, error)
	GetByID(ctx context.Context, id int64) (models.Company, error)
	GetAll(ctx context.Context) ([]models.Company, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, companyID int64) ([]models.User, error)
	AssignUser(ctx context.Context, companyID, userID int64) error
	RemoveUser(ctx context.Context, companyID, userID int64) error
}

type CompanyService struct {
	Store CompanyStore
	Users UserStore
	Now   func() time.Time
}

func (s CompanyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s CompanyService) GetAllCompanies(ctx context.Context) ([]dto.CompanyDTO, error) {
	companies, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CompaniesFromEntities(companies), nil
}

func (s CompanyService) GetCompany(ctx context.Context, id int64) (dto.CompanyDTO, error) {
	c, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	return dto.CompanyFromEntity(c), nil
}

func (s CompanyService) CreateCompany(ctx context.Context, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	exists, err := s.Store.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	if exists {
		return dto.CompanyDTO{}, domain.ConflictError{Resource: "company", Msg: "email already in use: " + in.Email}
	}

	c := in.ToEntity()
	c.ID = 0
	c.CreatedAt = s.now()

	saved, err := s.Store.Save(ctx, c)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	return dto.CompanyFromEntity(saved), nil
}

func (s CompanyService) UpdateCompany(ctx context.Context, id int64, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	c, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.CompanyDTO{}, err
	}

	if c.Email != in.Email {
		exists, err := s.Store.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return dto.CompanyDTO{}, err
		}
		if exists {
			return dto.CompanyDTO{}, domain.ConflictError{Resource: "company", Msg: "email already in use: " + in.Email}
		}
	}

	in.ApplyTo(&c)

	saved, err := s.Store.Save(ctx, c)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	return dto.CompanyFromEntity(saved), nil
}

func (s CompanyService) DeleteCompany(ctx context.Context, id int64) error {
	return s.Store.DeleteByID(ctx, id)
}

func (s CompanyService) GetUsersByCompany(ctx context.Context, companyID int64) ([]dto.UserDTO, error) {
	if err := s.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	users, err := s.Store.ListUsers(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return dto.UsersFromEntities(users), nil
}

// AssignUserToCompany links an existing user to an existing company.
// Assigning an already-assigned user is a no-op.
func (s CompanyService) AssignUserToCompany(ctx context.Context, companyID, userID int64) error {
	if err := s.requireCompany(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.Store.AssignUser(ctx, companyID, userID)
}

// RemoveUserFromCompany unlinks a user. Removing a user that was never
// assigned is a no-op, so the operation stays idempotent.
func (s CompanyService) RemoveUserFromCompany(ctx context.Context, companyID, userID int64) error {
	if err := s.requireCompany(ctx, companyID); err != nil {
		return err
	}
	return s.Store.RemoveUser(ctx, companyID, userID)
}

func (s CompanyService) requireCompany(ctx context.Context, id int64) error {
	exists, err := s.Store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFoundError{Resource: "company", ID: id}
	}
	return nil
}
