package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"marlin/internal/classroom/models"
	"marlin/internal/classroom/validation"
	dErrors "marlin/pkg/domain-errors"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/requestcontext"
)

// StudentService owns student records and student-side membership queries.
type StudentService struct {
	deps
}

func NewStudentService(students StudentStore, classes ClassStore, opts ...Option) *StudentService {
	return &StudentService{deps: newDeps(classes, students, opts)}
}

var (
	errTaxIDConflict   = dErrors.New(dErrors.CodeConflict, "a student with this tax id already exists")
	errStudentEnrolled = dErrors.New(dErrors.CodeInvariantViolation, "cannot delete a student that is enrolled in a class")
)

// Update replaces the scalar fields of a student.
func (s *StudentService) Update(ctx context.Context, registry string, in models.StudentInput) (_ *models.Student, err error) {
	ctx, span := s.startSpan(ctx, "StudentService.Update", attribute.String("student.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "student")
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateStudentUpdate(in); err != nil {
		return nil, err
	}
	taxID := validation.NormalizeTaxID(in.TaxID)

	var updated *models.Student
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		student, err := s.students.FindByRegistry(txCtx, reg)
		if err != nil {
			return storeErr(err, "student not found", "load student")
		}
		if other, err := s.students.FindByTaxID(txCtx, taxID); err == nil {
			if other.ID != student.ID {
				return errTaxIDConflict
			}
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return storeErr(err, "", "check tax id uniqueness")
		}
		student.FullName = strings.TrimSpace(in.FullName)
		student.TaxID = taxID
		student.Email = strings.TrimSpace(in.Email)
		student.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.students.Update(txCtx, student); err != nil {
			if errors.Is(err, models.ErrTaxIDTaken) {
				return errTaxIDConflict
			}
			return storeErr(err, "student not found", "update student")
		}
		updated = student
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "student not found", "update student")
	}

	// Class views embed student names.
	s.invalidateCache(ctx)
	s.logEvent(ctx, "student updated", "student_registry", reg)
	return updated, nil
}

// Delete removes a student that belongs to no class.
func (s *StudentService) Delete(ctx context.Context, registry string) (err error) {
	ctx, span := s.startSpan(ctx, "StudentService.Delete", attribute.String("student.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "student")
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		student, err := s.students.FindByRegistry(txCtx, reg)
		if err != nil {
			return storeErr(err, "student not found", "load student")
		}
		classes, err := s.classes.FindClassesContainingStudent(txCtx, student.ID, false)
		if err != nil {
			return storeErr(err, "", "load student classes")
		}
		if len(classes) > 0 {
			return errStudentEnrolled
		}
		if err := s.students.Delete(txCtx, student.ID); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return errStudentEnrolled
			}
			return storeErr(err, "student not found", "delete student")
		}
		return nil
	})
	if err != nil {
		return storeErr(err, "student not found", "delete student")
	}

	s.logEvent(ctx, "student deleted", "student_registry", reg)
	return nil
}

func (s *StudentService) Get(ctx context.Context, registry string) (_ *models.Student, err error) {
	ctx, span := s.startSpan(ctx, "StudentService.Get", attribute.String("student.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "student")
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByRegistry(ctx, reg)
	if err != nil {
		return nil, storeErr(err, "student not found", "load student")
	}
	return student, nil
}

func (s *StudentService) ListAll(ctx context.Context) (_ []*models.Student, err error) {
	ctx, span := s.startSpan(ctx, "StudentService.ListAll")
	defer func() { endSpan(span, err) }()

	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "", "list students")
	}
	return students, nil
}

// Classes lists the classes a student belongs to, without their members.
func (s *StudentService) Classes(ctx context.Context, registry string) (_ []*models.Class, err error) {
	ctx, span := s.startSpan(ctx, "StudentService.Classes", attribute.String("student.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "student")
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByRegistry(ctx, reg)
	if err != nil {
		return nil, storeErr(err, "student not found", "load student")
	}
	classes, err := s.classes.FindClassesContainingStudent(ctx, student.ID, false)
	if err != nil {
		return nil, storeErr(err, "", "load student classes")
	}
	return classes, nil
}

// RemoveAllClasses detaches a student from every class it belongs to and
// returns the registries of those classes. A student in no class yields none.
func (s *StudentService) RemoveAllClasses(ctx context.Context, registry string) (_ []string, err error) {
	ctx, span := s.startSpan(ctx, "StudentService.RemoveAllClasses", attribute.String("student.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "student")
	if err != nil {
		return nil, err
	}

	var detached []string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		student, err := s.students.FindByRegistry(txCtx, reg)
		if err != nil {
			return storeErr(err, "student not found", "load student")
		}
		classes, err := s.classes.FindClassesContainingStudent(txCtx, student.ID, false)
		if err != nil {
			return storeErr(err, "", "load student classes")
		}
		for _, c := range classes {
			class, err := s.classes.FindByRegistryForUpdate(txCtx, c.Registry)
			if err != nil {
				return storeErr(err, "class not found", "load class")
			}
			if !class.HasStudent(student.ID) {
				continue
			}
			if err := class.RemoveStudent(student.ID); err != nil {
				return err
			}
			if err := s.classes.UpdateMembers(txCtx, class); err != nil {
				return err
			}
			detached = append(detached, class.Registry)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "student not found", "remove student from classes")
	}
	if len(detached) == 0 {
		return nil, nil
	}

	s.invalidateCache(ctx)
	for _, classReg := range detached {
		s.publish(ctx, models.EventStudentUnenrolled, classReg, reg)
	}
	s.logEvent(ctx, "student removed from all classes", "student_registry", reg, "classes", len(detached))
	return detached, nil
}
