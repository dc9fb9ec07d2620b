package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (employee_id, date, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requested_at
	`

	err := q.QueryRow(ctx, query, req.EmployeeID, req.Date, req.Reason, req.Status).
		Scan(&req.ID, &req.RequestedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), reason, status, requested_at, actioned_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status, &req.RequestedAt, &req.ActionedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// HasPendingOnDate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) HasPendingOnDate(ctx context.Context, employeeID int64, date string) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND date = $2 AND status = 'pending'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending leave: %w", err)
	}

	return exists, nil
}

// GetLatestForDate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetLatestForDate(ctx context.Context, employeeID int64, date string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), reason, status, requested_at, actioned_at
		FROM leave_requests
		WHERE employee_id = $1 AND date = $2
		ORDER BY requested_at DESC, id DESC
		LIMIT 1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status, &req.RequestedAt, &req.ActionedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest leave request for date: %w", err)
	}

	return &req, nil
}

// LatestPerDate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) LatestPerDate(ctx context.Context, employeeID int64, dates []string) (map[string]leave.LeaveRequest, error) {
	if len(dates) == 0 {
		return map[string]leave.LeaveRequest{}, nil
	}

	q := GetQuerier(ctx, l.db)

	query := `
		SELECT DISTINCT ON (date)
		       id, employee_id, to_char(date, 'YYYY-MM-DD'), reason, status, requested_at, actioned_at
		FROM leave_requests
		WHERE employee_id = $1 AND date = ANY($2)
		ORDER BY date, requested_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest leave per date: %w", err)
	}
	defer rows.Close()

	result := make(map[string]leave.LeaveRequest)
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status, &req.RequestedAt, &req.ActionedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result[req.Date] = req
	}

	return result, rows.Err()
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), reason, status, requested_at, actioned_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY requested_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status, &req.RequestedAt, &req.ActionedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListPending implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, to_char(lr.date, 'YYYY-MM-DD'), lr.reason, lr.status,
		       lr.requested_at, lr.actioned_at,
		       e.full_name AS employee_name,
		       d.name AS department_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE lr.status = 'pending'
		ORDER BY lr.requested_at ASC, lr.id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status,
			&req.RequestedAt, &req.ActionedAt,
			&req.EmployeeName, &req.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.RequestStatus, actionedAt time.Time) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, actioned_at = $3
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, actionedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListApprovedEmployeeIDsOnDate implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListApprovedEmployeeIDsOnDate(ctx context.Context, date string) ([]int64, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT DISTINCT employee_id
		FROM leave_requests
		WHERE date = $1 AND status = 'approved'
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
