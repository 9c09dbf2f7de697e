package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const userColumns = `id, first_name, last_name, email, COALESCE(phone, ''), created_at, updated_at`

type UserRepository struct {
	DB *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// isDuplicateKey reports whether err is a MySQL unique-index violation.
// The unique index on email is the authoritative race resolution for
// concurrent inserts; the service-level existence check is best effort.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// Save inserts when the id is zero, otherwise updates the existing row.
// A duplicate email surfaces as a domain conflict either way.
func (r UserRepository) Save(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == 0 {
		res, err := r.DB.ExecContext(ctx, `
			INSERT INTO users (first_name, last_name, email, phone, created_at, updated_at)
			VALUES (?, ?, ?, NULLIF(?, ''), ?, ?)
		`, u.FirstName, u.LastName, u.Email, u.Phone, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			if isDuplicateKey(err) {
				return u, domain.ConflictError{Resource: "user", Msg: "email already in use: " + u.Email, Err: err}
			}
			return u, fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return u, fmt.Errorf("insert user id: %w", err)
		}
		u.ID = id
		return u, nil
	}

	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, phone = NULLIF(?, ''), updated_at = ?
		WHERE id = ?
	`, u.FirstName, u.LastName, u.Email, u.Phone, u.UpdatedAt, u.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return u, domain.ConflictError{Resource: "user", Msg: "email already in use: " + u.Email, Err: err}
		}
		return u, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", ID: id}
		}
		return u, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user"}
		}
		return u, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

func (r UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
}

// GetPage returns one page of users plus the total row count. orderBy must
// already be a validated "column direction" pair; it is never raw client
// input (the service owns the allow-list).
func (r UserRepository) GetPage(ctx context.Context, offset, limit int, orderBy string) ([]models.User, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users, err := r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY `+orderBy+`, id ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r UserRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows: %w", err)
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}

// SearchByName matches a case-insensitive substring against first or last name.
func (r UserRepository) SearchByName(ctx context.Context, name string) ([]models.User, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?
		ORDER BY id ASC
	`, pattern, pattern)
}

func (r UserRepository) ListByLastNamePrefix(ctx context.Context, prefix string) ([]models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE last_name LIKE ?
		ORDER BY id ASC
	`, prefix+"%")
}

func (r UserRepository) ListCreatedAfter(ctx context.Context, after time.Time) ([]models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE created_at > ?
		ORDER BY id ASC
	`, after)
}

func (r UserRepository) ListByEmailDomain(ctx context.Context, emailDomain string) ([]models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email LIKE CONCAT('%@', ?)
		ORDER BY id ASC
	`, emailDomain)
}

func (r UserRepository) CountByEmailDomain(ctx context.Context, emailDomain string) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email LIKE CONCAT('%@', ?)`, emailDomain).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by email domain: %w", err)
	}
	return count, nil
}

func (r UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	return users, nil
}
