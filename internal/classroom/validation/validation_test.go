package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/models"
	dErrors "marlin/pkg/domain-errors"
)

type ValidationSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

func validClass() models.ClassInput {
	return models.ClassInput{Number: 1, Year: "2023.1", Level: 3}
}

func validStudent() models.StudentInput {
	return models.StudentInput{FullName: "Ana Souza", TaxID: "111.444.777-35", Email: "ana@example.com"}
}

func (s *ValidationSuite) assertInvalid(err error, contains string) {
	s.T().Helper()
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(err.Error(), contains)
}

// =============================================================================
// Class rules
// =============================================================================

func (s *ValidationSuite) TestClassCreate() {
	s.Run("accepts a valid class", func() {
		s.NoError(ValidateClassCreate(validClass()))
		s.NoError(ValidateClassCreate(models.ClassInput{Number: 2, Year: "2024", Level: 1}))
	})

	s.Run("rejects non-positive number", func() {
		in := validClass()
		in.Number = 0
		s.assertInvalid(ValidateClassCreate(in), "number")
	})

	s.Run("rejects bad years", func() {
		for _, year := range []string{"", "   ", "2023.12", "20a3", "2023."} {
			in := validClass()
			in.Year = year
			s.Error(ValidateClassCreate(in), "year %q", year)
		}
	})

	s.Run("rejects out-of-range level", func() {
		for _, level := range []int{0, 4, -1} {
			in := validClass()
			in.Level = level
			s.assertInvalid(ValidateClassCreate(in), "level")
		}
	})

	s.Run("number is checked before year and level", func() {
		s.assertInvalid(ValidateClassCreate(models.ClassInput{Number: 0, Year: "", Level: 9}), "number")
	})
}

func (s *ValidationSuite) TestClassUpdate() {
	s.Run("registry is checked first", func() {
		s.assertInvalid(ValidateClassUpdate("  ", models.ClassInput{}), "registry")
	})

	s.Run("falls through to create rules", func() {
		in := validClass()
		in.Level = 7
		s.assertInvalid(ValidateClassUpdate("CL0A1B2C3D", in), "level")
		s.NoError(ValidateClassUpdate("CL0A1B2C3D", validClass()))
	})
}

// =============================================================================
// Student rules
// =============================================================================

func (s *ValidationSuite) TestStudentUpdate() {
	s.Run("accepts a valid student", func() {
		s.NoError(ValidateStudentUpdate(validStudent()))
	})

	s.Run("rejects blank and oversized names", func() {
		in := validStudent()
		in.FullName = "  "
		s.assertInvalid(ValidateStudentUpdate(in), "full name")

		in.FullName = strings.Repeat("a", 256)
		s.assertInvalid(ValidateStudentUpdate(in), "full name")

		in.FullName = strings.Repeat("ã", 255)
		s.NoError(ValidateStudentUpdate(in))
	})

	s.Run("rejects invalid tax id", func() {
		in := validStudent()
		in.TaxID = "111.444.777-36"
		s.assertInvalid(ValidateStudentUpdate(in), "tax id")
	})

	s.Run("rejects invalid emails", func() {
		for _, email := range []string{"", "not-an-email", strings.Repeat("a", 250) + "@example.com"} {
			in := validStudent()
			in.Email = email
			s.assertInvalid(ValidateStudentUpdate(in), "email")
		}
	})

	s.Run("name is checked before tax id and email", func() {
		s.assertInvalid(ValidateStudentUpdate(models.StudentInput{}), "full name")
	})
}

func (s *ValidationSuite) TestStudentCreate() {
	s.Run("requires a class reference", func() {
		s.assertInvalid(ValidateStudentCreate(validStudent(), nil), "class")
		s.assertInvalid(ValidateStudentCreate(validStudent(), []string{" ", ""}), "class")
	})

	s.Run("class references are checked last", func() {
		in := validStudent()
		in.Email = "bad"
		s.assertInvalid(ValidateStudentCreate(in, nil), "email")
	})

	s.Run("accepts a valid request", func() {
		s.NoError(ValidateStudentCreate(validStudent(), []string{"CL0A1B2C3D"}))
	})
}
