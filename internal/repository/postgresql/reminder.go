package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/reminder"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type reminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) reminder.ReminderRepository {
	return &reminderRepository{db: db}
}

// Create implements reminder.ReminderRepository.
func (r *reminderRepository) Create(ctx context.Context, rem reminder.Reminder) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reminders (employee_id, title, notes, remind_at, done)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rem.EmployeeID, rem.Title, rem.Notes, rem.RemindAt).
		Scan(&rem.ID, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem, nil
}

// GetByID implements reminder.ReminderRepository.
func (r *reminderRepository) GetByID(ctx context.Context, id int64) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, title, notes, remind_at, done, created_at, updated_at
		FROM reminders
		WHERE id = $1
	`

	var rem reminder.Reminder
	err := q.QueryRow(ctx, query, id).Scan(
		&rem.ID, &rem.EmployeeID, &rem.Title, &rem.Notes, &rem.RemindAt, &rem.Done,
		&rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reminder.Reminder{}, reminder.ErrReminderNotFound
		}
		return reminder.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// MarkDone implements reminder.ReminderRepository.
func (r *reminderRepository) MarkDone(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE reminders SET done = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder done: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return reminder.ErrReminderNotFound
	}

	return nil
}

// Delete implements reminder.ReminderRepository.
func (r *reminderRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return reminder.ErrReminderNotFound
	}

	return nil
}

// ListUpcoming implements reminder.ReminderRepository.
func (r *reminderRepository) ListUpcoming(ctx context.Context, employeeID int64) ([]reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, title, notes, remind_at, done, created_at, updated_at
		FROM reminders
		WHERE employee_id = $1 AND done = false
		ORDER BY remind_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		var rem reminder.Reminder
		err := rows.Scan(
			&rem.ID, &rem.EmployeeID, &rem.Title, &rem.Notes, &rem.RemindAt, &rem.Done,
			&rem.CreatedAt, &rem.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}
