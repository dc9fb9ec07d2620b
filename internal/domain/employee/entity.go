package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	FullName     string
	Email        string
	Position     *string
	DepartmentID *int64
	ProjectID    *int64
	PhoneNumber  *string
	Address      *string
	HireDate     *string // YYYY-MM-DD
	BaseSalary   *decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views
	DepartmentName *string
	ProjectName    *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
