package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/prateeksan/patterns/internal/log"
	"github.com/prateeksan/patterns/internal/pubsub"
)

// RunReport describes the outcome of a single demo run.
type RunReport struct {
	Name     string
	Category Category
	Err      error
	Duration time.Duration
}

// Runner executes catalog entries, publishing a lifecycle event per run and
// wrapping each run in a trace span. Lifecycle events reach the debug log
// through a broker subscription, the same path any other consumer would use.
type Runner struct {
	registry *Registry
	tracer   trace.Tracer
	broker   *pubsub.Broker[RunReport]
	cancel   context.CancelFunc
}

// NewRunner creates a runner for the given registry.
// A nil tracer disables span creation.
func NewRunner(registry *Registry, tracer trace.Tracer) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("patterns")
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		registry: registry,
		tracer:   tracer,
		broker:   pubsub.NewBroker[RunReport](),
		cancel:   cancel,
	}
	go logEvents(r.broker.Subscribe(ctx))
	return r
}

// logEvents drains run lifecycle events into the debug log. It exits when
// the subscription channel closes.
func logEvents(events <-chan pubsub.Event[RunReport]) {
	for event := range events {
		switch event.Type {
		case pubsub.StartedEvent:
			log.Debug(log.CatDemo, "running demo",
				"name", event.Payload.Name, "category", event.Payload.Category)
		case pubsub.FinishedEvent:
			log.Debug(log.CatDemo, "demo finished",
				"name", event.Payload.Name, "duration", event.Payload.Duration)
		case pubsub.FailedEvent:
			log.ErrorErr(log.CatDemo, "demo failed", event.Payload.Err,
				"name", event.Payload.Name)
		}
	}
}

// Events exposes the run event stream.
func (r *Runner) Events() pubsub.Subscriber[RunReport] {
	return r.broker
}

// Close shuts down the event broker and its log subscription.
func (r *Runner) Close() {
	r.cancel()
	r.broker.Close()
}

// RunOne executes a single demo by name and returns its report.
func (r *Runner) RunOne(ctx context.Context, w io.Writer, name string) RunReport {
	entry, err := r.registry.Get(name)
	if err != nil {
		report := RunReport{Name: name, Err: fmt.Errorf("looking up demo %q: %w", name, err)}
		r.broker.Publish(pubsub.FailedEvent, report)
		return report
	}
	return r.run(ctx, w, entry)
}

// RunAll executes the given entries in order and returns the reports.
// A failing demo does not stop the remaining ones.
func (r *Runner) RunAll(ctx context.Context, w io.Writer, entries []*Entry) []RunReport {
	reports := make([]RunReport, 0, len(entries))
	for _, entry := range entries {
		reports = append(reports, r.run(ctx, w, entry))
	}
	return reports
}

func (r *Runner) run(ctx context.Context, w io.Writer, entry *Entry) RunReport {
	r.broker.Publish(pubsub.StartedEvent, RunReport{Name: entry.Name, Category: entry.Category})

	ctx, span := r.tracer.Start(ctx, "demo.run",
		trace.WithAttributes(
			attribute.String("demo.name", entry.Name),
			attribute.String("demo.category", string(entry.Category)),
		),
	)
	start := time.Now()
	err := entry.Run(ctx, w)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	report := RunReport{
		Name:     entry.Name,
		Category: entry.Category,
		Err:      err,
		Duration: duration,
	}

	if err != nil {
		r.broker.Publish(pubsub.FailedEvent, report)
	} else {
		r.broker.Publish(pubsub.FinishedEvent, report)
	}
	return report
}
