package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"marlin/internal/classroom"
	"marlin/internal/platform/metrics"
	"marlin/pkg/testutil"
)

func newTestRouter(t *testing.T, checks ...HealthCheck) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	module := classroom.New(classroom.Options{Logger: logger})
	return NewRouter(RouterConfig{
		Logger:       logger,
		Metrics:      metrics.New(reg),
		Gatherer:     reg,
		HealthChecks: checks,
	}, module.Handler)
}

func TestEnrollmentFlowThroughRouter(t *testing.T) {
	testutil.Given(t, "a router backed by in-memory stores", func(t *testing.T) {
		router := newTestRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/class",
			map[string]any{"number": 1, "year": "2023.1", "level": 3}))
		data := testutil.AssertSucceeded(t, rr).(map[string]any)
		classRegistry := data["registry"].(string)

		testutil.When(t, "creating the same class again", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/class",
				map[string]any{"number": 1, "year": "2023.1", "level": 3}))

			testutil.Then(t, "it is rejected as a conflict", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusBadRequest)
				testutil.AssertErrorCode(t, rr, "conflict")
			})
		})

		testutil.When(t, "creating a student enrolled in the class", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/student", map[string]any{
				"fullName": "João Silva",
				"cpf":      "111.444.777-35",
				"email":    "joao@example.com",
				"classes":  []map[string]string{{"classRegistry": classRegistry}},
			}))

			testutil.Then(t, "the student registry derives from the name", func(t *testing.T) {
				data := testutil.AssertSucceeded(t, rr).(map[string]any)
				if !strings.HasPrefix(data["studentRegistry"].(string), "JOA-") {
					t.Fatalf("unexpected student registry %v", data["studentRegistry"])
				}
			})

			testutil.And(t, "the class lists the student", func(t *testing.T) {
				rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/class/"+classRegistry))
				class := testutil.AssertSucceeded(t, rr).(map[string]any)
				if got := len(class["students"].([]any)); got != 1 {
					t.Fatalf("expected 1 student, got %d", got)
				}
			})
		})

		testutil.When(t, "deleting the occupied class", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/api/class/"+classRegistry))

			testutil.Then(t, "it is refused", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusBadRequest)
				testutil.AssertErrorCode(t, rr, "invariant_violation")
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	testutil.Given(t, "a router with a failing dependency", func(t *testing.T) {
		router := newTestRouter(t, HealthCheck{
			Name:  "postgres",
			Check: func(context.Context) error { return errors.New("connection refused") },
		})

		testutil.When(t, "calling GET /health", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))

			testutil.Then(t, "it reports the service as degraded", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
				testutil.AssertJSONContains(t, rr, "status", "degraded")
			})
		})

		testutil.When(t, "calling GET /metrics after traffic", func(t *testing.T) {
			testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/class/all"))
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

			testutil.Then(t, "request latency is exported by route pattern", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				if !strings.Contains(rr.Body.String(), `route="/api/class/all"`) {
					t.Fatalf("expected route label in metrics output")
				}
			})
		})
	})
}
