package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marlin/internal/classroom/models"
	dErrors "marlin/pkg/domain-errors"
	"marlin/pkg/platform/httputil"
	"marlin/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service-mocks.go -package=mocks ClassService,StudentService,EnrollmentService

type ClassService interface {
	Create(ctx context.Context, in models.ClassInput) (*models.Class, error)
	Update(ctx context.Context, registry string, in models.ClassInput) (*models.Class, error)
	Delete(ctx context.Context, registry string) error
	Get(ctx context.Context, registry string) (*models.Class, error)
	ListAll(ctx context.Context) ([]*models.Class, error)
	RemoveAllStudents(ctx context.Context, registry string) ([]models.StudentRef, error)
	RemoveStudent(ctx context.Context, classRegistry, studentRegistry string) error
	RegisterStudent(ctx context.Context, classRegistry, studentRegistry string) error
}

type StudentService interface {
	Update(ctx context.Context, registry string, in models.StudentInput) (*models.Student, error)
	Delete(ctx context.Context, registry string) error
	Get(ctx context.Context, registry string) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	Classes(ctx context.Context, registry string) ([]*models.Class, error)
	RemoveAllClasses(ctx context.Context, registry string) ([]string, error)
}

type EnrollmentService interface {
	CreateStudentWithEnrollment(ctx context.Context, in models.EnrollmentInput) (*models.Student, error)
}

// Handler serves the class and student endpoints.
type Handler struct {
	logger      *slog.Logger
	classes     ClassService
	students    StudentService
	enrollments EnrollmentService
}

func New(classes ClassService, students StudentService, enrollments EnrollmentService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:      logger,
		classes:     classes,
		students:    students,
		enrollments: enrollments,
	}
}

// Register mounts the class and student routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/class", func(r chi.Router) {
		r.Post("/", h.handleCreateClass)
		r.Get("/all", h.handleListClasses)
		r.Get("/{registry}", h.handleGetClass)
		r.Patch("/{registry}", h.handleUpdateClass)
		r.Delete("/{registry}", h.handleDeleteClass)
		r.Post("/{registry}/students/detach/all", h.handleDetachAllStudents)
		r.Post("/{classRegistry}/students/detach/{studentRegistry}", h.handleDetachStudent)
		r.Post("/{classRegistry}/students/register/{studentRegistry}", h.handleRegisterStudent)
	})
	r.Route("/api/student", func(r chi.Router) {
		r.Post("/", h.handleCreateStudent)
		r.Get("/all", h.handleListStudents)
		r.Get("/{registry}", h.handleGetStudent)
		r.Patch("/{registry}", h.handleUpdateStudent)
		r.Delete("/{registry}", h.handleDeleteStudent)
		r.Get("/{registry}/classes", h.handleStudentClasses)
		r.Post("/{registry}/detach/all", h.handleDetachAllClasses)
	})
}

// =============================================================================
// Classes
// =============================================================================

func (h *Handler) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ClassRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	class, err := h.classes.Create(ctx, req.Input())
	if err != nil {
		h.fail(ctx, w, "create class", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("class %s created", class.Registry),
		ClassCreatedResponse{Registry: class.Registry})
}

func (h *Handler) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	registry := chi.URLParam(r, "registry")

	req, ok := httputil.DecodeAndPrepare[ClassRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	class, err := h.classes.Update(ctx, registry, req.Input())
	if err != nil {
		h.fail(ctx, w, "update class", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("class %s updated", class.Registry), toClassSummary(class))
}

func (h *Handler) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registry := chi.URLParam(r, "registry")

	if err := h.classes.Delete(ctx, registry); err != nil {
		h.fail(ctx, w, "delete class", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("class %s deleted", registry), nil)
}

func (h *Handler) handleGetClass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	class, err := h.classes.Get(ctx, chi.URLParam(r, "registry"))
	if err != nil {
		h.fail(ctx, w, "get class", err)
		return
	}
	httputil.WriteSuccess(w, "", toClassDetail(class))
}

func (h *Handler) handleListClasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	classes, err := h.classes.ListAll(ctx)
	if err != nil {
		h.fail(ctx, w, "list classes", err)
		return
	}
	httputil.WriteSuccess(w, "", toClassSummaries(classes))
}

func (h *Handler) handleDetachAllStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registry := chi.URLParam(r, "registry")

	removed, err := h.classes.RemoveAllStudents(ctx, registry)
	if err != nil {
		h.fail(ctx, w, "remove students from class", err)
		return
	}
	if len(removed) == 0 {
		httputil.WriteSuccess(w, fmt.Sprintf("class %s has no students to remove", registry), nil)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("%d students removed from class %s", len(removed), registry), nil)
}

func (h *Handler) handleDetachStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	classRegistry := chi.URLParam(r, "classRegistry")
	studentRegistry := chi.URLParam(r, "studentRegistry")

	if err := h.classes.RemoveStudent(ctx, classRegistry, studentRegistry); err != nil {
		h.fail(ctx, w, "remove student from class", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s removed from class %s", studentRegistry, classRegistry), nil)
}

func (h *Handler) handleRegisterStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	classRegistry := chi.URLParam(r, "classRegistry")
	studentRegistry := chi.URLParam(r, "studentRegistry")

	if err := h.classes.RegisterStudent(ctx, classRegistry, studentRegistry); err != nil {
		h.fail(ctx, w, "register student in class", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s registered in class %s", studentRegistry, classRegistry), nil)
}

// =============================================================================
// Students
// =============================================================================

func (h *Handler) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateStudentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	student, err := h.enrollments.CreateStudentWithEnrollment(ctx, req.Input())
	if err != nil {
		h.fail(ctx, w, "create student", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s created", student.Registry),
		StudentCreatedResponse{StudentRegistry: student.Registry})
}

func (h *Handler) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	registry := chi.URLParam(r, "registry")

	req, ok := httputil.DecodeAndPrepare[StudentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	student, err := h.students.Update(ctx, registry, req.Input())
	if err != nil {
		h.fail(ctx, w, "update student", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s updated", student.Registry), toStudent(student))
}

func (h *Handler) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registry := chi.URLParam(r, "registry")

	if err := h.students.Delete(ctx, registry); err != nil {
		h.fail(ctx, w, "delete student", err)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s deleted", registry), nil)
}

func (h *Handler) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	student, err := h.students.Get(ctx, chi.URLParam(r, "registry"))
	if err != nil {
		h.fail(ctx, w, "get student", err)
		return
	}
	httputil.WriteSuccess(w, "", toStudent(student))
}

func (h *Handler) handleListStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	students, err := h.students.ListAll(ctx)
	if err != nil {
		h.fail(ctx, w, "list students", err)
		return
	}
	httputil.WriteSuccess(w, "", toStudents(students))
}

func (h *Handler) handleStudentClasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	classes, err := h.students.Classes(ctx, chi.URLParam(r, "registry"))
	if err != nil {
		h.fail(ctx, w, "list student classes", err)
		return
	}
	httputil.WriteSuccess(w, "", toClassSummaries(classes))
}

func (h *Handler) handleDetachAllClasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registry := chi.URLParam(r, "registry")

	detached, err := h.students.RemoveAllClasses(ctx, registry)
	if err != nil {
		h.fail(ctx, w, "remove student from classes", err)
		return
	}
	if len(detached) == 0 {
		httputil.WriteSuccess(w, fmt.Sprintf("student %s is not enrolled in any class", registry), nil)
		return
	}
	httputil.WriteSuccess(w, fmt.Sprintf("student %s removed from %d classes", registry, len(detached)), detached)
}

// fail logs by severity and writes the error envelope. Client errors are
// expected traffic; everything else is logged with the underlying cause.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	requestID := requestcontext.RequestID(ctx)
	if dErrors.CodeOf(err).IsClientError() {
		h.logger.WarnContext(ctx, op+" rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
	} else {
		h.logger.ErrorContext(ctx, op+" failed",
			"request_id", requestID,
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
