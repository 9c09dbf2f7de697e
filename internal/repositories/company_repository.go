package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

const companyColumns = `id, name, email, COALESCE(phone, ''), created_at`

type CompanyRepository struct {
	DB *sql.DB
}

func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}

func (r CompanyRepository) Save(ctx context.Context, c models.Company) (models.Company, error) {
	if c.ID == 0 {
		res, err := r.DB.ExecContext(ctx, `
			INSERT INTO companies (name, email, phone, created_at)
			VALUES (?, ?, NULLIF(?, ''), ?)
		`, c.Name, c.Email, c.Phone, c.CreatedAt)
		if err != nil {
			if isDuplicateKey(err) {
				return c, domain.ConflictError{Resource: "company", Msg: "email already in use: " + c.Email, Err: err}
			}
			return c, fmt.Errorf("insert company: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return c, fmt.Errorf("insert company id: %w", err)
		}
		c.ID = id
		return c, nil
	}

	_, err := r.DB.ExecContext(ctx, `
		UPDATE companies
		SET name = ?, email = ?, phone = NULLIF(?, '')
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return c, domain.ConflictError{Resource: "company", Msg: "email already in use: " + c.Email, Err: err}
		}
		return c, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}

func (r CompanyRepository) GetByID(ctx context.Context, id int64) (models.Company, error) {
	c, err := scanCompany(r.DB.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "company", ID: id}
		}
		return c, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func (r CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read companies: %w", err)
	}
	return companies, nil
}

func (r CompanyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("company exists: %w", err)
	}
	return exists, nil
}

func (r CompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("company exists by email: %w", err)
	}
	return exists, nil
}

func (r CompanyRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete company rows: %w", err)
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "company", ID: id}
	}
	return nil
}

// ListUsers returns the users associated with a company via the
// company_users join table.
func (r CompanyRepository) ListUsers(ctx context.Context, companyID int64) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email, COALESCE(u.phone, ''), u.created_at, u.updated_at
		FROM users u
		INNER JOIN company_users cu ON cu.user_id = u.id
		WHERE cu.company_id = ?
		ORDER BY u.id ASC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("query company users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read company users: %w", err)
	}
	return users, nil
}

// AssignUser links a user to a company. INSERT IGNORE makes re-assigning
// an already-assigned user a no-op.
func (r CompanyRepository) AssignUser(ctx context.Context, companyID, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT IGNORE INTO company_users (company_id, user_id) VALUES (?, ?)
	`, companyID, userID)
	if err != nil {
		return fmt.Errorf("assign user to company: %w", err)
	}
	return nil
}

// RemoveUser unlinks a user from a company. Removing an unassigned user
// deletes zero rows and is not an error.
func (r CompanyRepository) RemoveUser(ctx context.Context, companyID, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM company_users WHERE company_id = ? AND user_id = ?
	`, companyID, userID)
	if err != nil {
		return fmt.Errorf("remove user from company: %w", err)
	}
	return nil
}
