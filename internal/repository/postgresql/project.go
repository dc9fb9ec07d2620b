package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/project"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// GetByID implements project.ProjectRepository.
func (p *projectRepository) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		       status, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var proj project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&proj.ID, &proj.Name, &proj.Description,
		&proj.StartDate, &proj.EndDate,
		&proj.Status, &proj.CreatedAt, &proj.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// Create implements project.ProjectRepository.
func (p *projectRepository) Create(ctx context.Context, proj project.Project) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO projects (name, description, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		proj.Name, proj.Description, proj.StartDate, proj.EndDate, proj.Status,
	).Scan(&proj.ID, &proj.CreatedAt, &proj.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return proj, nil
}

// Update implements project.ProjectRepository.
func (p *projectRepository) Update(ctx context.Context, id int64, req project.UpsertProjectRequest) error {
	q := GetQuerier(ctx, p.db)

	status := string(project.ProjectStatusActive)
	if req.Status != nil {
		status = *req.Status
	}

	query := `
		UPDATE projects
		SET name = $2, description = $3, start_date = $4, end_date = $5, status = $6, updated_at = now()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, req.Name, req.Description, req.StartDate, req.EndDate, status)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Delete implements project.ProjectRepository.
func (p *projectRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, p.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// List implements project.ProjectRepository.
func (p *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, description,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		       status, created_at, updated_at
		FROM projects
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID, &proj.Name, &proj.Description,
			&proj.StartDate, &proj.EndDate,
			&proj.Status, &proj.CreatedAt, &proj.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}

	return projects, rows.Err()
}
