package employee

import (
	"github.com/shopspring/decimal"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Position     *string `json:"position"`
	DepartmentID *int64  `json:"departmentId"`
	ProjectID    *int64  `json:"projectId"`
	PhoneNumber  *string `json:"phoneNumber"`
	Address      *string `json:"address"`
	HireDate     *string `json:"hireDate"`
	BaseSalary   *string `json:"baseSalary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hireDate must be in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && *r.BaseSalary != "" {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "baseSalary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	Position     *string `json:"position"`
	DepartmentID *int64  `json:"departmentId"`
	ProjectID    *int64  `json:"projectId"`
	PhoneNumber  *string `json:"phoneNumber"`
	Address      *string `json:"address"`
	HireDate     *string `json:"hireDate"`
	BaseSalary   *string `json:"baseSalary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hireDate must be in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && *r.BaseSalary != "" {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "baseSalary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Position       *string `json:"position,omitempty"`
	DepartmentID   *int64  `json:"departmentId,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
	ProjectID      *int64  `json:"projectId,omitempty"`
	ProjectName    *string `json:"projectName,omitempty"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"`
	Address        *string `json:"address,omitempty"`
	HireDate       *string `json:"hireDate,omitempty"`
	BaseSalary     *string `json:"baseSalary,omitempty"`
	Status         Status  `json:"status"`
}
