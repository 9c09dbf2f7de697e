package services

import (
	"context"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type link struct {
	companyID, userID int64
}

type fakeCompanyStore struct {
	companies map[int64]models.Company
	links     map[link]bool
	users     *fakeUserStore
	nextID    int64
}

func newFakeCompanyStore(users *fakeUserStore) *fakeCompanyStore {
	return &fakeCompanyStore{
		companies: map[int64]models.Company{},
		links:     map[link]bool{},
		users:     users,
	}
}

func (f *fakeCompanyStore) Save(_ context.Context, c models.Company) (models.Company, error) {
	if c.ID == 0 {
		for _, existing := range f.companies {
			if existing.Email == c.Email {
				return c, domain.ConflictError{Resource: "company", Msg: "email already in use: " + c.Email}
			}
		}
		f.nextID++
		c.ID = f.nextID
	}
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id int64) (models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return models.Company{}, domain.NotFoundError{Resource: "company", ID: id}
	}
	return c, nil
}

func (f *fakeCompanyStore) GetAll(_ context.Context) ([]models.Company, error) {
	out := []models.Company{}
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

func (f *fakeCompanyStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, c := range f.companies {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyStore) DeleteByID(_ context.Context, id int64) error {
	if _, ok := f.companies[id]; !ok {
		return domain.NotFoundError{Resource: "company", ID: id}
	}
	delete(f.companies, id)
	return nil
}

func (f *fakeCompanyStore) ListUsers(ctx context.Context, companyID int64) ([]models.User, error) {
	out := []models.User{}
	for l := range f.links {
		if l.companyID == companyID {
			if u, err := f.users.GetByID(ctx, l.userID); err == nil {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeCompanyStore) AssignUser(_ context.Context, companyID, userID int64) error {
	f.links[link{companyID, userID}] = true
	return nil
}

func (f *fakeCompanyStore) RemoveUser(_ context.Context, companyID, userID int64) error {
	delete(f.links, link{companyID, userID})
	return nil
}

func newCompanyFixture(t *testing.T) (CompanyService, *fakeCompanyStore, dto.CompanyDTO, dto.UserDTO) {
	t.Helper()
	users := newFakeUserStore()
	store := newFakeCompanyStore(users)
	svc := CompanyService{Store: store, Users: users, Now: fixedNow}

	company, err := svc.CreateCompany(context.Background(), dto.CompanyDTO{
		Name: "Acme", Email: "hello@acme.test", Phone: "555-0101",
	})
	require.NoError(t, err)

	userSvc := UserService{Store: users, Now: fixedNow}
	user, err := userSvc.CreateUser(context.Background(), dto.UserDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	return svc, store, company, user
}

func TestCreateCompanyStampsCreatedAtAndRejectsDuplicates(t *testing.T) {
	svc, _, company, _ := newCompanyFixture(t)
	assert.Equal(t, fixedNow(), company.CreatedAt)

	_, err := svc.CreateCompany(context.Background(), dto.CompanyDTO{Name: "Other", Email: "hello@acme.test"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestUpdateCompanyEmailConflict(t *testing.T) {
	svc, _, company, _ := newCompanyFixture(t)
	ctx := context.Background()

	_, err := svc.CreateCompany(ctx, dto.CompanyDTO{Name: "Globex", Email: "hi@globex.test"})
	require.NoError(t, err)

	_, err = svc.UpdateCompany(ctx, company.ID, dto.CompanyDTO{Name: "Acme", Email: "hi@globex.test"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	updated, err := svc.UpdateCompany(ctx, company.ID, dto.CompanyDTO{Name: "Acme Corp", Email: "hello@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
}

func TestAssignUserIsIdempotent(t *testing.T) {
	svc, store, company, user := newCompanyFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AssignUserToCompany(ctx, company.ID, user.ID))
	require.NoError(t, svc.AssignUserToCompany(ctx, company.ID, user.ID))
	assert.Len(t, store.links, 1)

	users, err := svc.GetUsersByCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.Email, users[0].Email)
}

func TestAssignUserChecksBothSides(t *testing.T) {
	svc, _, company, user := newCompanyFixture(t)
	ctx := context.Background()

	err := svc.AssignUserToCompany(ctx, 999, user.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	err = svc.AssignUserToCompany(ctx, company.ID, 999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRemoveUnassignedUserIsNoOp(t *testing.T) {
	svc, _, company, user := newCompanyFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveUserFromCompany(ctx, company.ID, user.ID))

	err := svc.RemoveUserFromCompany(ctx, 999, user.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetUsersByUnknownCompany(t *testing.T) {
	svc, _, _, _ := newCompanyFixture(t)

	_, err := svc.GetUsersByCompany(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
