package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.email, e.position, e.department_id, e.project_id,
	e.phone_number, e.address, to_char(e.hire_date, 'YYYY-MM-DD'),
	e.base_salary::text, e.status, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row, withJoins bool) (employee.Employee, error) {
	var emp employee.Employee
	var salary *string

	dest := []interface{}{
		&emp.ID, &emp.FullName, &emp.Email, &emp.Position, &emp.DepartmentID, &emp.ProjectID,
		&emp.PhoneNumber, &emp.Address, &emp.HireDate,
		&salary, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &emp.DepartmentName, &emp.ProjectName)
	}

	if err := row.Scan(dest...); err != nil {
		return employee.Employee{}, err
	}

	if salary != nil {
		d, err := decimal.NewFromString(*salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		emp.BaseSalary = &d
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `,
		       d.name AS department_name,
		       p.name AS project_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN projects p ON p.id = e.project_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (full_name, email, position, department_id, project_id,
		                       phone_number, address, hire_date, base_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	var salary *string
	if emp.BaseSalary != nil {
		s := emp.BaseSalary.String()
		salary = &s
	}

	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.Position, emp.DepartmentID, emp.ProjectID,
		emp.PhoneNumber, emp.Address, emp.HireDate, salary, emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FullName != nil {
		appendUpdate("full_name", *req.FullName)
	}
	if req.Email != nil {
		appendUpdate("email", *req.Email)
	}
	if req.Position != nil {
		appendUpdate("position", *req.Position)
	}
	if req.DepartmentID != nil {
		appendUpdate("department_id", *req.DepartmentID)
	}
	if req.ProjectID != nil {
		appendUpdate("project_id", *req.ProjectID)
	}
	if req.PhoneNumber != nil {
		appendUpdate("phone_number", *req.PhoneNumber)
	}
	if req.Address != nil {
		appendUpdate("address", *req.Address)
	}
	if req.HireDate != nil {
		appendUpdate("hire_date", *req.HireDate)
	}
	if req.BaseSalary != nil {
		appendUpdate("base_salary", *req.BaseSalary)
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d", argIdx)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return e.list(ctx, "")
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return e.list(ctx, "WHERE e.status = 'active'")
}

func (e *employeeRepository) list(ctx context.Context, where string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `,
		       d.name AS department_name,
		       p.name AS project_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN projects p ON p.id = e.project_id
		` + where + `
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// SetStatus implements employee.EmployeeRepository.
func (e *employeeRepository) SetStatus(ctx context.Context, id int64, status employee.Status) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
