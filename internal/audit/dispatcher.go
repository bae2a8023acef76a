package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Event struct {
	AccountID *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Sink persists a single audit event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

var droppedEvents = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "barbershop",
	Subsystem: "audit",
	Name:      "dropped_events_total",
	Help:      "Audit events discarded because the queue was full.",
})

// Collectors exposes the package metrics for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{droppedEvents}
}

type Dispatcher struct {
	sink  Sink
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}

	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, buffer),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			slog.Error("audit write failed", "action", ev.Action, "entity", ev.Entity, "error", err)
		}
	}
}

// Dispatch never blocks: a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		droppedEvents.Inc()
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains pending events and waits for the worker to finish.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
