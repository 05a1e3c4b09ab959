package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWebhookSinkSignsPayload(t *testing.T) {
	var gotSig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-FC-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewWebhookSink(WebhookConfig{Enabled: true, Endpoint: srv.URL, Secret: "s3cret"})
	if s == nil {
		t.Fatal("sink should be enabled")
	}
	if err := s.Emit(context.Background(), Event{Name: ConfigUpdated, Time: time.Now()}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if gotSig == "" || gotSig[:7] != "sha256=" {
		t.Fatalf("missing signature header, got %q", gotSig)
	}
}

func TestWebhookSinkDisabled(t *testing.T) {
	if s := NewWebhookSink(WebhookConfig{Enabled: false, Endpoint: "http://x"}); s != nil {
		t.Fatal("disabled config must yield nil sink")
	}
}

type flakySink struct {
	fails int32
	calls int32
	done  chan struct{}
}

func (f *flakySink) Emit(ctx context.Context, e Event) error {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= f.fails {
		return context.DeadlineExceeded
	}
	close(f.done)
	return nil
}

func TestDispatcherRetries(t *testing.T) {
	sink := &flakySink{fails: 2, done: make(chan struct{})}
	cfg := Config{}
	cfg.Retry.MaxAttempts = 5
	cfg.Retry.InitialDelay = time.Millisecond
	d := NewDispatcher(cfg, sink)

	d.Dispatch(context.Background(), Event{Name: ConfigSeeded})
	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatal("sink never succeeded")
	}
	if got := atomic.LoadInt32(&sink.calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestDispatcherSkipsNilSinks(t *testing.T) {
	d := NewDispatcher(Config{}, nil, nil)
	if len(d.sinks) != 0 {
		t.Fatalf("nil sinks must be skipped, got %d", len(d.sinks))
	}
}

func TestDispatcherSkipsDisabledConstructorSinks(t *testing.T) {
	redisSink, err := NewRedisSink(RedisConfig{})
	if err != nil {
		t.Fatalf("redis sink: %v", err)
	}
	kafkaSink, err := NewKafkaSink(KafkaConfig{})
	if err != nil {
		t.Fatalf("kafka sink: %v", err)
	}
	d := NewDispatcher(Config{}, NewWebhookSink(WebhookConfig{}), redisSink, kafkaSink)
	if len(d.sinks) != 0 {
		t.Fatalf("disabled sinks must be skipped, got %d", len(d.sinks))
	}
}
