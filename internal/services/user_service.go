package services

import (
	"context"
	"strings"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/dto"
)

// UserStore is the persistence contract the user service depends on.
// repositories.UserRepository implements it.
type UserStore interface {
	Save(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetPage(ctx context.Context, offset, limit int, orderBy string) ([]models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, name string) ([]models.User, error)
}

// userSortColumns is the allow-list of sortable fields; anything else is
// rejected before it reaches the query layer.
var userSortColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"createdAt": "created_at",
}

type UserService struct {
	Store UserStore
	Now   func() time.Time
}

func (s UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListUsers returns one page of users with total-count metadata.
func (s UserService) ListUsers(ctx context.Context, req domain.PageRequest) (domain.Page[dto.UserDTO], error) {
	var empty domain.Page[dto.UserDTO]

	if req.Page < 0 {
		return empty, domain.ValidationError{Field: "page", Msg: "must not be negative"}
	}
	if req.Size < 1 {
		return empty, domain.ValidationError{Field: "size", Msg: "must be at least 1"}
	}
	if req.Size > domain.MaxPageSize {
		req.Size = domain.MaxPageSize
	}

	if req.SortField == "" {
		req.SortField = "firstName"
	}
	column, ok := userSortColumns[req.SortField]
	if !ok {
		return empty, domain.ValidationError{Field: "sortBy", Msg: "unknown sort field: " + req.SortField}
	}

	if req.SortDir == "" {
		req.SortDir = domain.SortAsc
	}
	dir := strings.ToLower(req.SortDir)
	if dir != domain.SortAsc && dir != domain.SortDesc {
		return empty, domain.ValidationError{Field: "sortDir", Msg: "must be asc or desc"}
	}

	users, total, err := s.Store.GetPage(ctx, req.Offset(), req.Size, column+" "+strings.ToUpper(dir))
	if err != nil {
		return empty, err
	}
	return domain.NewPage(dto.UsersFromEntities(users), req, total), nil
}

func (s UserService) GetUser(ctx context.Context, id int64) (dto.UserDTO, error) {
	u, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.UserFromEntity(u), nil
}

func (s UserService) CreateUser(ctx context.Context, in dto.UserDTO) (dto.UserDTO, error) {
	exists, err := s.Store.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return dto.UserDTO{}, err
	}
	if exists {
		return dto.UserDTO{}, domain.ConflictError{Resource: "user", Msg: "email already in use: " + in.Email}
	}

	u := in.ToEntity()
	u.ID = 0
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now

	saved, err := s.Store.Save(ctx, u)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.UserFromEntity(saved), nil
}

func (s UserService) UpdateUser(ctx context.Context, id int64, in dto.UserDTO) (dto.UserDTO, error) {
	u, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}

	// A conflict only exists when the email moves to one owned by a
	// different user; keeping your own email is fine.
	if u.Email != in.Email {
		exists, err := s.Store.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return dto.UserDTO{}, err
		}
		if exists {
			return dto.UserDTO{}, domain.ConflictError{Resource: "user", Msg: "email already in use: " + in.Email}
		}
	}

	in.ApplyTo(&u)
	u.UpdatedAt = s.now()

	saved, err := s.Store.Save(ctx, u)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.UserFromEntity(saved), nil
}

func (s UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.Store.DeleteByID(ctx, id)
}

func (s UserService) SearchUsers(ctx context.Context, name string) ([]dto.UserDTO, error) {
	users, err := s.Store.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.UsersFromEntities(users), nil
}
