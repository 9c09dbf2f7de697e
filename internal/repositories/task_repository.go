package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

const taskColumns = `id, title, COALESCE(description, ''), completed`

type TaskRepository struct {
	DB *sql.DB
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed)
	return t, err
}

func (r TaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return tasks, nil
}

func (r TaskRepository) GetByID(ctx context.Context, id int64) (models.Task, error) {
	t, err := scanTask(r.DB.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, domain.NotFoundError{Resource: "task", ID: id}
		}
		return t, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r TaskRepository) Insert(ctx context.Context, t models.Task) (models.Task, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO tasks (title, description, completed) VALUES (?, ?, ?)
	`, t.Title, t.Description, t.Completed)
	if err != nil {
		return t, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return t, fmt.Errorf("insert task id: %w", err)
	}
	t.ID = id
	return t, nil
}

func (r TaskRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows: %w", err)
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "task", ID: id}
	}
	return nil
}
