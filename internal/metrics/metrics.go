// Package metrics exposes Prometheus collectors for the task lifecycle.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/events"
	"github.com/phrazzld/agent-tasks/internal/task"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "agent_tasks"
	subsystem = "executor"
)

// Metrics records task lifecycle activity. It implements task.Observer and
// events.EventHandler so it can be attached to the executor and the emitter.
type Metrics struct {
	eventsRecorded *prometheus.CounterVec
	tasksFinished  *prometheus.CounterVec
	tasksRejected  *prometheus.CounterVec
	taskDuration   *prometheus.HistogramVec
	tasksRunning   prometheus.Gauge
}

var (
	_ task.Observer       = (*Metrics)(nil)
	_ events.EventHandler = (*Metrics)(nil)
)

// MustNewMetrics constructs Metrics and registers its collectors with reg.
// Collectors already registered under the same name are reused; any other
// registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Metrics{
		eventsRecorded: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_recorded_total",
				Help:      "Task events appended to event logs, by event type.",
			},
			[]string{"type"},
		)),
		tasksFinished: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tasks_finished_total",
				Help:      "Tasks that reached a terminal status.",
			},
			[]string{"status"},
		)),
		tasksRejected: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tasks_rejected_total",
				Help:      "Submissions refused before a task was created.",
			},
			[]string{"reason"},
		)),
		taskDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "task_duration_seconds",
				Help:      "Time from RUNNING to a terminal status.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 4, 10),
			},
			[]string{"status"},
		)),
		tasksRunning: register(reg, prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tasks_running",
				Help:      "Tasks currently being executed by an agent.",
			},
		)),
	}
}

// MustRegisterQueueDepth exposes the executor queue occupancy as a gauge.
func MustRegisterQueueDepth(reg prometheus.Registerer, depth func() int) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	register(reg, prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "queue_depth",
			Help:      "Queue slots currently reserved or holding a waiting task.",
		},
		func() float64 { return float64(depth()) },
	))
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// HandleEvent counts recorded events by type.
func (m *Metrics) HandleEvent(_ context.Context, event *events.RecordedEvent) error {
	if m == nil || event == nil {
		return nil
	}
	m.eventsRecorded.WithLabelValues(string(event.Event.Type)).Inc()
	return nil
}

// TaskRejected counts a refused submission.
func (m *Metrics) TaskRejected(err error) {
	if m == nil {
		return
	}
	reason := "other"
	switch {
	case errors.Is(err, task.ErrQueueFull):
		reason = "queue_full"
	case errors.Is(err, task.ErrQueueClosed):
		reason = "shutting_down"
	}
	m.tasksRejected.WithLabelValues(reason).Inc()
}

// TaskStarted marks a task as running.
func (m *Metrics) TaskStarted() {
	if m == nil {
		return
	}
	m.tasksRunning.Inc()
}

// TaskFinished records the terminal status and execution time of a task.
func (m *Metrics) TaskFinished(status domain.TaskStatus, duration time.Duration) {
	if m == nil {
		return
	}
	m.tasksRunning.Dec()
	m.tasksFinished.WithLabelValues(string(status)).Inc()
	m.taskDuration.WithLabelValues(string(status)).Observe(duration.Seconds())
}
