// Package validation checks the structural validity of class and student
// requests. Checks run in a fixed order and the first violation is returned
// as a CodeValidation error.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"marlin/internal/classroom/models"
	dErrors "marlin/pkg/domain-errors"
)

const (
	maxYearLength  = 6
	maxNameLength  = 255
	maxEmailLength = 255
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateClassCreate checks number, year and level in that order.
func ValidateClassCreate(in models.ClassInput) error {
	if in.Number <= 0 {
		return invalid("class number must be greater than zero")
	}
	if err := validateYear(in.Year); err != nil {
		return err
	}
	if !models.Level(in.Level).Valid() {
		return invalid("class level must be 1 (Beginner), 2 (Intermediate) or 3 (Expert)")
	}
	return nil
}

// ValidateClassUpdate checks the target registry before the create rules.
func ValidateClassUpdate(registry string, in models.ClassInput) error {
	if strings.TrimSpace(registry) == "" {
		return invalid("class registry is required")
	}
	return ValidateClassCreate(in)
}

func validateYear(year string) error {
	year = strings.TrimSpace(year)
	if year == "" {
		return invalid("class year is required")
	}
	if utf8.RuneCountInString(year) > maxYearLength {
		return invalid(fmt.Sprintf("class year must be at most %d characters", maxYearLength))
	}
	if validate.Var(year, "numeric") != nil {
		return invalid("class year must be a number, optionally with a semester suffix (e.g. 2023.1)")
	}
	return nil
}

// ValidateStudentUpdate checks full name, tax id and email in that order.
func ValidateStudentUpdate(in models.StudentInput) error {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return invalid("full name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return invalid(fmt.Sprintf("full name must be at most %d characters", maxNameLength))
	}
	if !ValidTaxID(in.TaxID) {
		return invalid("tax id (CPF) is invalid")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return invalid("email is required")
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return invalid(fmt.Sprintf("email must be at most %d characters", maxEmailLength))
	}
	if validate.Var(email, "email") != nil {
		return invalid("email is invalid")
	}
	return nil
}

// ValidateStudentCreate adds the class reference requirement to the update rules.
func ValidateStudentCreate(in models.StudentInput, classRefs []string) error {
	if err := ValidateStudentUpdate(in); err != nil {
		return err
	}
	for _, ref := range classRefs {
		if strings.TrimSpace(ref) != "" {
			return nil
		}
	}
	return invalid("at least one class registry is required")
}

func invalid(msg string) error {
	return dErrors.New(dErrors.CodeValidation, msg)
}
