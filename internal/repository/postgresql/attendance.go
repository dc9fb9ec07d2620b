package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status, in_time, out_time, work_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.Status,
		att.InTime,
		att.OutTime,
		att.WorkHours,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), status,
		       to_char(in_time, 'HH24:MI:SS'), to_char(out_time, 'HH24:MI:SS'),
		       work_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.InTime, &att.OutTime,
		&att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckOut(ctx context.Context, id int64, outTime string, workHours float64, status attendance.Status) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET out_time = $2, work_hours = $3, status = $4, updated_at = now()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, outTime, workHours, status)
	if err != nil {
		return fmt.Errorf("failed to update check-out: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// UpsertLeaveDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertLeaveDay(ctx context.Context, employeeID int64, date string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status, in_time, out_time, work_hours)
		VALUES ($1, $2, 'leave', NULL, NULL, 0)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = 'leave', in_time = NULL, out_time = NULL, work_hours = 0, updated_at = now()
	`

	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to upsert leave day: %w", err)
	}

	return nil
}

// ListRecentByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecentByEmployee(ctx context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), status,
		       to_char(in_time, 'HH24:MI:SS'), to_char(out_time, 'HH24:MI:SS'),
		       work_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.InTime, &att.OutTime,
			&att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, to_char(a.date, 'YYYY-MM-DD'), a.status,
		       to_char(a.in_time, 'HH24:MI:SS'), to_char(a.out_time, 'HH24:MI:SS'),
		       a.work_hours, a.created_at, a.updated_at,
		       e.full_name AS employee_name,
		       d.name AS department_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE a.date = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.InTime, &att.OutTime,
			&att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, month string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, to_char(a.date, 'YYYY-MM-DD'), a.status,
		       to_char(a.in_time, 'HH24:MI:SS'), to_char(a.out_time, 'HH24:MI:SS'),
		       a.work_hours, a.created_at, a.updated_at,
		       e.full_name AS employee_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE to_char(a.date, 'YYYY-MM') = $1
		ORDER BY a.employee_id, a.date
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.InTime, &att.OutTime,
			&att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListOpenSessions implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenSessions(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), status,
		       to_char(in_time, 'HH24:MI:SS'), to_char(out_time, 'HH24:MI:SS'),
		       work_hours, created_at, updated_at
		FROM attendance_records
		WHERE date = $1
		  AND in_time IS NOT NULL
		  AND out_time IS NULL
		  AND status IN ('present', 'half-day')
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.InTime, &att.OutTime,
			&att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// CountByStatusOnDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatusOnDate(ctx context.Context, date string) ([]attendance.StatusCount, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE date = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	var counts []attendance.StatusCount
	for rows.Next() {
		var c attendance.StatusCount
		if err := rows.Scan(&c.Status, &c.Total); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
