package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
)

type stubProducer struct {
	sarama.AsyncProducer
	input chan *sarama.ProducerMessage
	errs  chan *sarama.ProducerError
}

func newStubProducer(inputBuf int) *stubProducer {
	return &stubProducer{
		input: make(chan *sarama.ProducerMessage, inputBuf),
		errs:  make(chan *sarama.ProducerError, 1),
	}
}

func (p *stubProducer) Input() chan<- *sarama.ProducerMessage { return p.input }
func (p *stubProducer) Errors() <-chan *sarama.ProducerError  { return p.errs }

func TestKafkaSinkEmitSuccess(t *testing.T) {
	prod := newStubProducer(1)
	s := &KafkaSink{Producer: prod, Topic: "events"}
	if err := s.Emit(context.Background(), Event{Name: ConfigUpdated, ID: "global"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	msg := <-prod.input
	if msg.Topic != "events" {
		t.Fatalf("unexpected topic %q", msg.Topic)
	}
}

func TestKafkaSinkEmitSurfacesProducerError(t *testing.T) {
	prod := newStubProducer(0) // nothing drains input
	want := errors.New("broker down")
	prod.errs <- &sarama.ProducerError{Err: want}
	s := &KafkaSink{Producer: prod, Topic: "events"}
	if err := s.Emit(context.Background(), Event{Name: ConfigUpdated}); !errors.Is(err, want) {
		t.Fatalf("expected producer error, got %v", err)
	}
}

func TestKafkaSinkEmitHonorsCancellation(t *testing.T) {
	prod := newStubProducer(0)
	s := &KafkaSink{Producer: prod, Topic: "events"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- s.Emit(ctx, Event{Name: ConfigUpdated}) }()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked despite cancelled context")
	}
}
