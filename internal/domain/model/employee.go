// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidEmployee marks an employee that violates a field constraint.
var ErrInvalidEmployee = errors.New("invalid employee")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Employee is one validated employee row. Values are built once by the
// loader and never modified afterwards; Skills is sorted and unique.
type Employee struct {
	Name            string
	Position        string
	CompletedTasks  int `validate:"min=0"`
	Performance     float64
	Skills          []string
	Team            string
	ExperienceYears int `validate:"min=0"`
}

// Validate checks the numeric invariants of e.
func (e Employee) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s must be >= %s, got %v", columnName(fe.Field()), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidEmployee, strings.Join(msgs, "; "))
}

// columnName maps a struct field to its CSV column.
func columnName(field string) string {
	switch field {
	case "CompletedTasks":
		return "completed_tasks"
	case "ExperienceYears":
		return "experience_years"
	default:
		return strings.ToLower(field)
	}
}
