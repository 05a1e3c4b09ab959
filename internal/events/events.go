// Package events broadcasts configuration-change notifications to
// configured sinks. Delivery is best effort; the configuration write
// itself never waits on a sink.
package events

import (
	"context"
	"time"

	"github.com/charan-kumar-kamasani/authentik/internal/logger"
)

// Default is the global dispatcher used by Emit.
var Default *Dispatcher

// Event names emitted by the configuration API and seeder.
const (
	ConfigUpdated = "formconfig.updated"
	ConfigSeeded  = "formconfig.seeded"
)

// Event is the notification payload.
type Event struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
	Data any       `json:"data"`
	ID   string    `json:"id"`
}

// Sink publishes events.
type Sink interface {
	Emit(ctx context.Context, e Event) error
}

// Config provides dispatcher settings.
type Config struct {
	Sinks struct {
		Webhook WebhookConfig `yaml:"webhook"`
		Redis   RedisConfig   `yaml:"redis"`
		Kafka   KafkaConfig   `yaml:"kafka"`
	} `yaml:"sinks"`
	Retry RetryConfig `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

// Dispatcher fans events out to its sinks with exponential backoff.
type Dispatcher struct {
	sinks        []Sink
	maxAttempts  int
	initialDelay time.Duration
}

// NewDispatcher creates a dispatcher from retry config and sinks. Nil
// sinks are skipped so callers can pass constructors directly.
func NewDispatcher(cfg Config, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{maxAttempts: 3, initialDelay: time.Second}
	if cfg.Retry.MaxAttempts > 0 {
		d.maxAttempts = cfg.Retry.MaxAttempts
	}
	if cfg.Retry.InitialDelay > 0 {
		d.initialDelay = cfg.Retry.InitialDelay
	}
	for _, s := range sinks {
		if s != nil {
			d.sinks = append(d.sinks, s)
		}
	}
	return d
}

// Emit sends an event through the global dispatcher if one is set.
func Emit(ctx context.Context, e Event) {
	if Default != nil {
		Default.Dispatch(ctx, e)
	}
}

// Dispatch sends the event to all sinks asynchronously.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) {
	for _, s := range d.sinks {
		sink := s
		go d.retrySend(ctx, sink, e)
	}
}

func (d *Dispatcher) retrySend(ctx context.Context, s Sink, e Event) {
	delay := d.initialDelay
	var err error
	for i := 1; i <= d.maxAttempts; i++ {
		if err = s.Emit(ctx, e); err == nil {
			return
		}
		time.Sleep(delay)
		delay *= 2
	}
	logger.L.Error("event delivery failed", "event", e.Name, "err", err)
}
