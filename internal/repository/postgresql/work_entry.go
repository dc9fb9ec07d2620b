package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/workentry"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type workEntryRepository struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) workentry.WorkEntryRepository {
	return &workEntryRepository{db: db}
}

// Create implements workentry.WorkEntryRepository.
func (w *workEntryRepository) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_entries (employee_id, project_id, date, description, hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.ProjectID, entry.Date, entry.Description, entry.Hours,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return workentry.WorkEntry{}, fmt.Errorf("failed to create work entry: %w", err)
	}

	return entry, nil
}

// GetByID implements workentry.WorkEntryRepository.
func (w *workEntryRepository) GetByID(ctx context.Context, id int64) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT we.id, we.employee_id, we.project_id, to_char(we.date, 'YYYY-MM-DD'),
		       we.description, we.hours, we.created_at, we.updated_at,
		       p.name AS project_name
		FROM work_entries we
		LEFT JOIN projects p ON p.id = we.project_id
		WHERE we.id = $1
	`

	var entry workentry.WorkEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.ProjectID, &entry.Date,
		&entry.Description, &entry.Hours, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.ProjectName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
		}
		return workentry.WorkEntry{}, fmt.Errorf("failed to get work entry: %w", err)
	}

	return entry, nil
}

// Delete implements workentry.WorkEntryRepository.
func (w *workEntryRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, w.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return workentry.ErrWorkEntryNotFound
	}

	return nil
}

// ListByEmployeeMonth implements workentry.WorkEntryRepository.
func (w *workEntryRepository) ListByEmployeeMonth(ctx context.Context, employeeID int64, month string) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT we.id, we.employee_id, we.project_id, to_char(we.date, 'YYYY-MM-DD'),
		       we.description, we.hours, we.created_at, we.updated_at,
		       p.name AS project_name
		FROM work_entries we
		LEFT JOIN projects p ON p.id = we.project_id
		WHERE we.employee_id = $1
		  AND to_char(we.date, 'YYYY-MM') = $2
		ORDER BY we.date DESC, we.id DESC
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query work entries: %w", err)
	}
	defer rows.Close()

	var entries []workentry.WorkEntry
	for rows.Next() {
		var entry workentry.WorkEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.ProjectID, &entry.Date,
			&entry.Description, &entry.Hours, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.ProjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
