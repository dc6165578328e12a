package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

const taskColumns = `id, title, description, category, priority, due_date, completed, created_at, updated_at`

// CreateTask inserts a new task. An empty ID is replaced with a fresh UUID
// and an empty priority defaults to medium. CreatedAt and UpdatedAt are
// set from the store clock.
func (s *Store) CreateTask(ctx context.Context, task *tasks.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Priority == "" {
		task.Priority = tasks.PriorityMedium
	}
	now := s.timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.Title, task.Description, task.Category, string(task.Priority),
		dueValue(task.DueDate), task.Completed, formatTime(task.CreatedAt), formatTime(task.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// GetTask retrieves a task by ID
func (s *Store) GetTask(ctx context.Context, id string) (*tasks.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := s.scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task in creation order
func (s *Store) ListTasks(ctx context.Context) ([]tasks.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	result := []tasks.Task{}
	for rows.Next() {
		task, err := s.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, *task)
	}
	return result, rows.Err()
}

// UpdateTask overwrites the mutable fields of an existing task and bumps
// UpdatedAt
func (s *Store) UpdateTask(ctx context.Context, task *tasks.Task) error {
	task.UpdatedAt = s.timestamp()
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, category = ?, priority = ?, due_date = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`, task.Title, task.Description, task.Category, string(task.Priority),
		dueValue(task.DueDate), task.Completed, formatTime(task.UpdatedAt), task.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res, "task", task.ID)
}

// SetCompleted marks a task complete or incomplete
func (s *Store) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`,
		completed, formatTime(s.timestamp()), id)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res, "task", id)
}

// DeleteTask removes a task by ID
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res, "task", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanTask(row rowScanner) (*tasks.Task, error) {
	var (
		task                 tasks.Task
		priority             string
		due                  sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Category, &priority,
		&due, &task.Completed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	task.Priority = tasks.Priority(priority)

	if due.Valid && due.String != "" {
		task.DueDate = tasks.ParseTimestamp(due.String, s.loc)
		if task.DueDate == nil {
			s.logger.Warn("unparseable due date", zap.String("task_id", task.ID), zap.String("value", due.String))
		}
	}
	task.CreatedAt = s.parseStamp(task.ID, "created_at", createdAt)
	task.UpdatedAt = s.parseStamp(task.ID, "updated_at", updatedAt)
	return &task, nil
}

func (s *Store) parseStamp(id, column, value string) time.Time {
	t := tasks.ParseTimestamp(value, time.UTC)
	if t == nil {
		s.logger.Warn("unparseable timestamp", zap.String("task_id", id), zap.String("column", column), zap.String("value", value))
		return time.Time{}
	}
	return *t
}

func dueValue(due *time.Time) any {
	if due == nil || due.IsZero() {
		return nil
	}
	return formatTime(*due)
}

func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
