package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	classmetrics "marlin/internal/classroom/metrics"
	"marlin/internal/classroom/models"
	"marlin/internal/classroom/validation"
	dErrors "marlin/pkg/domain-errors"
	pstrings "marlin/pkg/platform/strings"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/requestcontext"
)

// EnrollmentService creates a student together with its initial class
// memberships. Either the student and every membership persist, or nothing does.
type EnrollmentService struct {
	deps
}

func NewEnrollmentService(students StudentStore, classes ClassStore, opts ...Option) *EnrollmentService {
	return &EnrollmentService{deps: newDeps(classes, students, opts)}
}

func (s *EnrollmentService) CreateStudentWithEnrollment(ctx context.Context, in models.EnrollmentInput) (_ *models.Student, err error) {
	ctx, span := s.startSpan(ctx, "EnrollmentService.CreateStudentWithEnrollment")
	defer func() { endSpan(span, err) }()

	if err := validation.ValidateStudentCreate(in.Student, in.ClassRegistries); err != nil {
		return nil, err
	}
	classRegs := pstrings.DedupeAndTrimUpper(in.ClassRegistries)
	fullName := strings.TrimSpace(in.Student.FullName)
	taxID := validation.NormalizeTaxID(in.Student.TaxID)
	email := strings.TrimSpace(in.Student.Email)

	var created *models.Student
	err = withRegistryRetry(models.ErrStudentRegistryTaken, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if _, err := s.students.FindByTaxID(txCtx, taxID); err == nil {
				return errTaxIDConflict
			} else if !errors.Is(err, sentinel.ErrNotFound) {
				return storeErr(err, "", "check tax id uniqueness")
			}

			now := requestcontext.Now(txCtx)
			student := &models.Student{
				Registry:  s.registries.StudentRegistry(fullName, now.Year()),
				FullName:  fullName,
				TaxID:     taxID,
				Email:     email,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.students.Create(txCtx, student); err != nil {
				if errors.Is(err, models.ErrTaxIDTaken) {
					return errTaxIDConflict
				}
				return err
			}

			for _, reg := range classRegs {
				if err := s.enroll(txCtx, reg, student); err != nil {
					return err
				}
			}
			created = student
			return nil
		})
	})
	if err != nil {
		return nil, storeErr(err, "", "create student")
	}

	s.metrics.IncStudentCreated()
	for range classRegs {
		s.metrics.IncEnrollment(classmetrics.OutcomeEnrolled)
	}
	s.invalidateCache(ctx)
	for _, reg := range classRegs {
		s.publish(ctx, models.EventStudentEnrolled, reg, created.Registry)
	}
	s.logEvent(ctx, "student created", "student_registry", created.Registry, "classes", len(classRegs))
	span.SetAttributes(attribute.String("student.registry", created.Registry))
	return created, nil
}

func (s *EnrollmentService) enroll(ctx context.Context, classReg string, student *models.Student) error {
	class, err := s.classes.FindByRegistryForUpdate(ctx, classReg)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncEnrollment(classmetrics.OutcomeNotFound)
			return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("class %s not found", classReg))
		}
		return storeErr(err, "", "load class")
	}
	if class.IsFull() {
		s.metrics.IncEnrollment(classmetrics.OutcomeCapacity)
	}
	if err := class.AddStudent(student.Ref()); err != nil {
		return err
	}
	return s.classes.UpdateMembers(ctx, class)
}
