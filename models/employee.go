package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a staff record.
type Employee struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Role       *string         `json:"role"`
	Phone      *string         `json:"phone"`
	Salary     decimal.Decimal `json:"salary"`
	JoinedDate *string         `json:"joined_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmployeeInput is used for creating/updating employees.
type EmployeeInput struct {
	Name       string          `json:"name"`
	Role       *string         `json:"role"`
	Phone      *string         `json:"phone"`
	Salary     decimal.Decimal `json:"salary"`
	JoinedDate *string         `json:"joined_date"`
}

func (e *EmployeeInput) Validate() string {
	if e.Name == "" {
		return "name is required"
	}
	if e.Salary.IsNegative() {
		return "salary must be non-negative"
	}
	return ""
}
