package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
		       COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.status = 'active'
		WHERE d.id = $1
		GROUP BY d.id
	`

	var dep department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dep.ID, &dep.Name, &dep.Description, &dep.CreatedAt, &dep.UpdatedAt, &dep.EmployeeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return dep, nil
}

// Create implements department.DepartmentRepository.
func (d *departmentRepository) Create(ctx context.Context, dep department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dep.Name, dep.Description).
		Scan(&dep.ID, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dep, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepository) Update(ctx context.Context, id int64, name string, description *string) error {
	q := GetQuerier(ctx, d.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE departments SET name = $2, description = $3, updated_at = now() WHERE id = $1`,
		id, name, description)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (d *departmentRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, d.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
		       COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.status = 'active'
		GROUP BY d.id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dep department.Department
		err := rows.Scan(&dep.ID, &dep.Name, &dep.Description, &dep.CreatedAt, &dep.UpdatedAt, &dep.EmployeeCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dep)
	}

	return departments, rows.Err()
}
