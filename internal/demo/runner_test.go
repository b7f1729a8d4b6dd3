package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prateeksan/patterns/internal/pubsub"
)

func TestRunner_RunOneWritesNarration(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Add(&Entry{
		Name:     "hello",
		Category: CategoryBehavioural,
		Run: func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintln(w, "narrating")
			return err
		},
	}))

	runner := NewRunner(registry, nil)
	defer runner.Close()

	var buf bytes.Buffer
	report := runner.RunOne(context.Background(), &buf, "hello")

	require.NoError(t, report.Err)
	require.Equal(t, "hello", report.Name)
	require.Equal(t, "narrating\n", buf.String())
}

func TestRunner_RunOneUnknownDemo(t *testing.T) {
	runner := NewRunner(NewRegistry(), nil)
	defer runner.Close()

	report := runner.RunOne(context.Background(), io.Discard, "missing")
	require.ErrorIs(t, report.Err, ErrNotFound)
}

func TestRunner_RunAllContinuesPastFailure(t *testing.T) {
	registry := NewRegistry()
	failErr := errors.New("boom")
	require.NoError(t, registry.Add(&Entry{
		Name:     "bad",
		Category: CategoryCreational,
		Run:      func(ctx context.Context, w io.Writer) error { return failErr },
	}))
	require.NoError(t, registry.Add(&Entry{
		Name:     "good",
		Category: CategoryCreational,
		Run:      noopRun,
	}))

	runner := NewRunner(registry, nil)
	defer runner.Close()

	reports := runner.RunAll(context.Background(), io.Discard, registry.List())
	require.Len(t, reports, 2)
	require.ErrorIs(t, reports[0].Err, failErr)
	require.NoError(t, reports[1].Err)
}

func TestRunner_PublishesLifecycleEvents(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Add(newTestEntry("observed", CategoryStructural)))

	runner := NewRunner(registry, nil)
	defer runner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := runner.Events().Subscribe(ctx)

	runner.RunOne(context.Background(), io.Discard, "observed")

	var types []pubsub.EventType
	timeout := time.After(time.Second)
	for len(types) < 2 {
		select {
		case event := <-events:
			types = append(types, event.Type)
		case <-timeout:
			t.Fatalf("timed out, got events %v", types)
		}
	}

	require.Equal(t, []pubsub.EventType{pubsub.StartedEvent, pubsub.FinishedEvent}, types)
}

func TestRunner_SubscribesLogListener(t *testing.T) {
	runner := NewRunner(NewRegistry(), nil)

	// The runner's own log listener subscribes on construction, so the
	// broker always has at least one consumer.
	require.Equal(t, 1, runner.broker.SubscriberCount())

	runner.Close()
	require.Equal(t, 0, runner.broker.SubscriberCount())
}
