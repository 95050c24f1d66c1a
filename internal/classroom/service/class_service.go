package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	classmetrics "marlin/internal/classroom/metrics"
	"marlin/internal/classroom/models"
	"marlin/internal/classroom/validation"
	dErrors "marlin/pkg/domain-errors"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/requestcontext"
)

// ClassService owns class lifecycle and class-side membership changes.
type ClassService struct {
	deps
}

func NewClassService(classes ClassStore, students StudentStore, opts ...Option) *ClassService {
	return &ClassService{deps: newDeps(classes, students, opts)}
}

func tripleConflict(year string, number int, level models.Level) error {
	return dErrors.New(dErrors.CodeConflict,
		fmt.Sprintf("a class with year %s, number %d and level %s already exists", year, number, level))
}

// Create validates the input, rejects duplicate (year, number, level) triples
// and persists the class under a freshly generated registry.
func (s *ClassService) Create(ctx context.Context, in models.ClassInput) (_ *models.Class, err error) {
	ctx, span := s.startSpan(ctx, "ClassService.Create")
	defer func() { endSpan(span, err) }()

	if err := validation.ValidateClassCreate(in); err != nil {
		return nil, err
	}
	year := strings.TrimSpace(in.Year)
	level := models.Level(in.Level)

	var created *models.Class
	err = withRegistryRetry(models.ErrClassRegistryTaken, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if _, err := s.classes.FindByTriple(txCtx, year, in.Number, level); err == nil {
				return tripleConflict(year, in.Number, level)
			} else if !errors.Is(err, sentinel.ErrNotFound) {
				return storeErr(err, "", "check class uniqueness")
			}
			now := requestcontext.Now(txCtx)
			class := &models.Class{
				Registry:  s.registries.ClassRegistry(),
				Number:    in.Number,
				Year:      year,
				Level:     level,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.classes.Create(txCtx, class); err != nil {
				return err
			}
			created = class
			return nil
		})
	})
	if errors.Is(err, models.ErrClassTripleTaken) {
		return nil, tripleConflict(year, in.Number, level)
	}
	if err != nil {
		return nil, storeErr(err, "", "create class")
	}

	s.invalidateCache(ctx)
	s.metrics.IncClassCreated()
	s.logEvent(ctx, "class created", "class_registry", created.Registry)
	span.SetAttributes(attribute.String("class.registry", created.Registry))
	return created, nil
}

// Update replaces the scalar fields of a class. Membership is untouched.
func (s *ClassService) Update(ctx context.Context, registry string, in models.ClassInput) (_ *models.Class, err error) {
	ctx, span := s.startSpan(ctx, "ClassService.Update", attribute.String("class.registry", registry))
	defer func() { endSpan(span, err) }()

	if err := validation.ValidateClassUpdate(registry, in); err != nil {
		return nil, err
	}
	reg, err := requireRegistry(registry, "class")
	if err != nil {
		return nil, err
	}
	year := strings.TrimSpace(in.Year)
	level := models.Level(in.Level)

	var updated *models.Class
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.classes.FindByRegistryForUpdate(txCtx, reg)
		if err != nil {
			return storeErr(err, "class not found", "load class")
		}
		if other, err := s.classes.FindByTriple(txCtx, year, in.Number, level); err == nil {
			if other.ID != class.ID {
				return tripleConflict(year, in.Number, level)
			}
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return storeErr(err, "", "check class uniqueness")
		}
		class.Number = in.Number
		class.Year = year
		class.Level = level
		class.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.classes.Update(txCtx, class); err != nil {
			if errors.Is(err, models.ErrClassTripleTaken) {
				return tripleConflict(year, in.Number, level)
			}
			return storeErr(err, "class not found", "update class")
		}
		updated = class
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "class not found", "update class")
	}

	s.invalidateCache(ctx)
	s.logEvent(ctx, "class updated", "class_registry", reg)
	return updated, nil
}

// Delete removes an empty class.
func (s *ClassService) Delete(ctx context.Context, registry string) (err error) {
	ctx, span := s.startSpan(ctx, "ClassService.Delete", attribute.String("class.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "class")
	if err != nil {
		return err
	}
	hasStudents := dErrors.New(dErrors.CodeInvariantViolation, "cannot delete a class that still has enrolled students")

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.classes.FindByRegistryForUpdate(txCtx, reg)
		if err != nil {
			return storeErr(err, "class not found", "load class")
		}
		if !class.IsEmpty() {
			return hasStudents
		}
		if err := s.classes.Delete(txCtx, class.ID); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return hasStudents
			}
			return storeErr(err, "class not found", "delete class")
		}
		return nil
	})
	if err != nil {
		return storeErr(err, "class not found", "delete class")
	}

	s.invalidateCache(ctx)
	s.logEvent(ctx, "class deleted", "class_registry", reg)
	return nil
}

// Get returns a class with its members.
func (s *ClassService) Get(ctx context.Context, registry string) (_ *models.Class, err error) {
	ctx, span := s.startSpan(ctx, "ClassService.Get", attribute.String("class.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "class")
	if err != nil {
		return nil, err
	}

	gen, cacheable := int64(0), false
	if s.cache != nil {
		cached, g, err := s.cache.GetClass(ctx, reg)
		switch {
		case err == nil:
			s.metrics.IncCacheLookup(true)
			return cached, nil
		case errors.Is(err, sentinel.ErrNotFound):
			s.metrics.IncCacheLookup(false)
			gen, cacheable = g, true
		default:
			s.cacheFailed(ctx, "class cache read failed", err)
		}
	}

	class, err := s.classes.FindByRegistry(ctx, reg, true)
	if err != nil {
		return nil, storeErr(err, "class not found", "load class")
	}
	if cacheable {
		if err := s.cache.SetClass(ctx, gen, class); err != nil {
			s.cacheFailed(ctx, "class cache write failed", err)
		}
	}
	return class, nil
}

// ListAll returns every class without its member list.
func (s *ClassService) ListAll(ctx context.Context) (_ []*models.Class, err error) {
	ctx, span := s.startSpan(ctx, "ClassService.ListAll")
	defer func() { endSpan(span, err) }()

	gen, cacheable := int64(0), false
	if s.cache != nil {
		cached, g, err := s.cache.GetList(ctx)
		switch {
		case err == nil:
			s.metrics.IncCacheLookup(true)
			return cached, nil
		case errors.Is(err, sentinel.ErrNotFound):
			s.metrics.IncCacheLookup(false)
			gen, cacheable = g, true
		default:
			s.cacheFailed(ctx, "class list cache read failed", err)
		}
	}

	classes, err := s.classes.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "", "list classes")
	}
	if cacheable {
		if err := s.cache.SetList(ctx, gen, classes); err != nil {
			s.cacheFailed(ctx, "class list cache write failed", err)
		}
	}
	return classes, nil
}

// cacheFailed logs a cache error. A disabled cache is logged at debug so an
// outage does not flood the logs; the breaker already reported it.
func (s *ClassService) cacheFailed(ctx context.Context, msg string, err error) {
	level := slog.LevelWarn
	if errors.Is(err, sentinel.ErrUnavailable) {
		level = slog.LevelDebug
	}
	s.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}

// RemoveAllStudents empties a class and returns the removed members. An
// already empty class yields no members and no error.
func (s *ClassService) RemoveAllStudents(ctx context.Context, registry string) (_ []models.StudentRef, err error) {
	ctx, span := s.startSpan(ctx, "ClassService.RemoveAllStudents", attribute.String("class.registry", registry))
	defer func() { endSpan(span, err) }()

	reg, err := requireRegistry(registry, "class")
	if err != nil {
		return nil, err
	}

	var removed []models.StudentRef
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.classes.FindByRegistryForUpdate(txCtx, reg)
		if err != nil {
			return storeErr(err, "class not found", "load class")
		}
		if class.IsEmpty() {
			return nil
		}
		removed = append([]models.StudentRef(nil), class.Students...)
		class.ClearStudents()
		return s.classes.UpdateMembers(txCtx, class)
	})
	if err != nil {
		return nil, storeErr(err, "class not found", "remove students from class")
	}
	if len(removed) == 0 {
		return nil, nil
	}

	s.invalidateCache(ctx)
	s.publish(ctx, models.EventStudentUnenrolled, reg, refRegistries(removed)...)
	s.logEvent(ctx, "class emptied", "class_registry", reg, "removed", len(removed))
	return removed, nil
}

// RemoveStudent detaches one student from a class.
func (s *ClassService) RemoveStudent(ctx context.Context, classRegistry, studentRegistry string) (err error) {
	ctx, span := s.startSpan(ctx, "ClassService.RemoveStudent",
		attribute.String("class.registry", classRegistry),
		attribute.String("student.registry", studentRegistry),
	)
	defer func() { endSpan(span, err) }()

	classReg, err := requireRegistry(classRegistry, "class")
	if err != nil {
		return err
	}
	studentReg, err := requireRegistry(studentRegistry, "student")
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.classes.FindByRegistryForUpdate(txCtx, classReg)
		if err != nil {
			return storeErr(err, "class not found", "load class")
		}
		member, ok := class.MemberByRegistry(studentReg)
		if !ok {
			return dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("student %s is not enrolled in class %s", studentReg, classReg))
		}
		if err := class.RemoveStudent(member.ID); err != nil {
			return err
		}
		return s.classes.UpdateMembers(txCtx, class)
	})
	if err != nil {
		return storeErr(err, "class not found", "remove student from class")
	}

	s.invalidateCache(ctx)
	s.publish(ctx, models.EventStudentUnenrolled, classReg, studentReg)
	s.logEvent(ctx, "student removed from class", "class_registry", classReg, "student_registry", studentReg)
	return nil
}

// RegisterStudent enrolls an existing student into a class, respecting the
// class capacity.
func (s *ClassService) RegisterStudent(ctx context.Context, classRegistry, studentRegistry string) (err error) {
	ctx, span := s.startSpan(ctx, "ClassService.RegisterStudent",
		attribute.String("class.registry", classRegistry),
		attribute.String("student.registry", studentRegistry),
	)
	defer func() { endSpan(span, err) }()

	classReg, err := requireRegistry(classRegistry, "class")
	if err != nil {
		return err
	}
	studentReg, err := requireRegistry(studentRegistry, "student")
	if err != nil {
		return err
	}

	outcome := classmetrics.OutcomeFailed
	defer func() { s.metrics.IncEnrollment(outcome) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		class, err := s.classes.FindByRegistryForUpdate(txCtx, classReg)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				outcome = classmetrics.OutcomeNotFound
			}
			return storeErr(err, "class not found", "load class")
		}
		if _, ok := class.MemberByRegistry(studentReg); ok {
			outcome = classmetrics.OutcomeAlreadyMember
			return dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("student %s is already enrolled in class %s", studentReg, classReg))
		}
		student, err := s.students.FindByRegistry(txCtx, studentReg)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				outcome = classmetrics.OutcomeNotFound
			}
			return storeErr(err, "student not found", "load student")
		}
		if class.IsFull() {
			outcome = classmetrics.OutcomeCapacity
		}
		if err := class.AddStudent(student.Ref()); err != nil {
			return err
		}
		return s.classes.UpdateMembers(txCtx, class)
	})
	if err != nil {
		return storeErr(err, "class not found", "register student in class")
	}
	outcome = classmetrics.OutcomeEnrolled

	s.invalidateCache(ctx)
	s.publish(ctx, models.EventStudentEnrolled, classReg, studentReg)
	s.logEvent(ctx, "student registered in class", "class_registry", classReg, "student_registry", studentReg)
	return nil
}

func refRegistries(refs []models.StudentRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Registry)
	}
	return out
}
