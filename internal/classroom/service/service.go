package service

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	classmetrics "marlin/internal/classroom/metrics"
	"marlin/internal/classroom/models"
	"marlin/internal/classroom/registry"
	"marlin/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/store-mocks.go -package=mocks

type ClassStore interface {
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	UpdateMembers(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
	FindByRegistry(ctx context.Context, registry string, withStudents bool) (*models.Class, error)
	FindByRegistryForUpdate(ctx context.Context, registry string) (*models.Class, error)
	FindByTriple(ctx context.Context, year string, number int, level models.Level) (*models.Class, error)
	ListAll(ctx context.Context) ([]*models.Class, error)
	FindClassesContainingStudent(ctx context.Context, studentID int64, withStudents bool) ([]*models.Class, error)
}

type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	FindByRegistry(ctx context.Context, registry string) (*models.Student, error)
	FindByTaxID(ctx context.Context, taxID string) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
}

// StoreTx runs fn as one unit of work: committed when fn returns nil, rolled
// back otherwise.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegistryGenerator interface {
	ClassRegistry() string
	StudentRegistry(fullName string, year int) string
}

// ClassCache caches class views. Misses return sentinel.ErrNotFound plus the
// generation a subsequent Set must carry.
type ClassCache interface {
	GetClass(ctx context.Context, registry string) (*models.Class, int64, error)
	SetClass(ctx context.Context, gen int64, class *models.Class) error
	GetList(ctx context.Context) ([]*models.Class, int64, error)
	SetList(ctx context.Context, gen int64, classes []*models.Class) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.MembershipEvent) error
}

type serviceConfig struct {
	logger     *slog.Logger
	metrics    *classmetrics.Metrics
	tx         StoreTx
	registries RegistryGenerator
	cache      ClassCache
	events     EventPublisher
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *classmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTx sets the unit-of-work runner. Without it each store call stands alone.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

func WithRegistryGenerator(g RegistryGenerator) Option {
	return func(c *serviceConfig) {
		c.registries = g
	}
}

func WithCache(cache ClassCache) Option {
	return func(c *serviceConfig) {
		c.cache = cache
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(c *serviceConfig) {
		c.events = p
	}
}

// maxRegistryAttempts bounds retries after a generated registry collides.
const maxRegistryAttempts = 3

// deps is the dependency set shared by the class, student and enrollment services.
type deps struct {
	classes    ClassStore
	students   StudentStore
	tx         StoreTx
	registries RegistryGenerator
	cache      ClassCache
	events     EventPublisher
	logger     *slog.Logger
	metrics    *classmetrics.Metrics
	tracer     trace.Tracer
}

func newDeps(classes ClassStore, students StudentStore, opts []Option) deps {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	d := deps{
		classes:    classes,
		students:   students,
		tx:         cfg.tx,
		registries: cfg.registries,
		cache:      cfg.cache,
		events:     cfg.events,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
		tracer:     otel.Tracer("marlin/internal/classroom/service"),
	}
	if d.tx == nil {
		d.tx = passthroughTx{}
	}
	if d.registries == nil {
		d.registries = registry.New()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (d *deps) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return d.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (d *deps) logEvent(ctx context.Context, msg string, attrs ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}
	d.logger.InfoContext(ctx, msg, attrs...)
}

// invalidateCache retires cached class views after a committed write. Cache
// failures only cost freshness until the entry TTL.
func (d *deps) invalidateCache(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Invalidate(ctx); err != nil {
		d.logger.WarnContext(ctx, "class cache invalidation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// publish emits committed membership changes; delivery failures are logged.
func (d *deps) publish(ctx context.Context, eventType models.MembershipEventType, classRegistry string, studentRegistries ...string) {
	if d.events == nil {
		return
	}
	now := requestcontext.Now(ctx)
	for _, studentRegistry := range studentRegistries {
		event := models.MembershipEvent{
			Type:            eventType,
			ClassRegistry:   classRegistry,
			StudentRegistry: studentRegistry,
			OccurredAt:      now,
		}
		if err := d.events.Publish(ctx, event); err != nil {
			d.logger.WarnContext(ctx, "membership event publish failed",
				"request_id", requestcontext.RequestID(ctx),
				"event", string(eventType),
				"class_registry", classRegistry,
				"student_registry", studentRegistry,
				"error", err,
			)
		}
	}
}
