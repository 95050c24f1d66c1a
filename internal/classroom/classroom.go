// Package classroom assembles the class and student stores, services and
// HTTP handler into one module.
package classroom

import (
	"database/sql"
	"log/slog"

	"marlin/internal/classroom/handler"
	classmetrics "marlin/internal/classroom/metrics"
	"marlin/internal/classroom/registry"
	"marlin/internal/classroom/service"
	"marlin/internal/classroom/store"
	classstore "marlin/internal/classroom/store/class"
	studentstore "marlin/internal/classroom/store/student"
	"marlin/internal/platform/postgres"
)

// Options configures the module. A nil DB selects the in-memory stores; nil
// Cache and Events disable those features.
type Options struct {
	DB      *sql.DB
	Cache   service.ClassCache
	Events  service.EventPublisher
	Metrics *classmetrics.Metrics
	Logger  *slog.Logger
}

type Module struct {
	Classes     *service.ClassService
	Students    *service.StudentService
	Enrollments *service.EnrollmentService
	Handler     *handler.Handler
}

func New(opts Options) *Module {
	var (
		classes  service.ClassStore
		students service.StudentStore
		tx       service.StoreTx
	)
	if opts.DB != nil {
		classes = classstore.NewPostgres(opts.DB)
		students = studentstore.NewPostgres(opts.DB)
		tx = postgres.NewTxRunner(opts.DB)
	} else {
		memStudents := studentstore.NewInMemory()
		memClasses := classstore.NewInMemory(memStudents)
		classes, students = memClasses, memStudents
		tx = store.NewInMemoryTx(memStudents, memClasses)
	}

	svcOpts := []service.Option{
		service.WithTx(tx),
		service.WithRegistryGenerator(registry.New()),
		service.WithMetrics(opts.Metrics),
	}
	if opts.Logger != nil {
		svcOpts = append(svcOpts, service.WithLogger(opts.Logger))
	}
	if opts.Cache != nil {
		svcOpts = append(svcOpts, service.WithCache(opts.Cache))
	}
	if opts.Events != nil {
		svcOpts = append(svcOpts, service.WithEventPublisher(opts.Events))
	}

	m := &Module{
		Classes:     service.NewClassService(classes, students, svcOpts...),
		Students:    service.NewStudentService(students, classes, svcOpts...),
		Enrollments: service.NewEnrollmentService(students, classes, svcOpts...),
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m.Handler = handler.New(m.Classes, m.Students, m.Enrollments, logger)
	return m
}
