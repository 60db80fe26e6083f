package mailer

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Email
	err  error

	started chan struct{}
	gate    chan struct{}
}

func (s *recordingSender) Send(email Email) error {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.gate != nil {
		<-s.gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return s.err
}

func (s *recordingSender) delivered() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Email, len(s.sent))
	copy(out, s.sent)
	return out
}

// TestDispatcherDelivers проверяет доставку писем из очереди.
func TestDispatcherDelivers(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 4)

	d.Enqueue(Email{To: "a@example.com", Subject: "first"})
	d.Enqueue(Email{To: "b@example.com", Subject: "second"})
	d.Close()

	sent := sender.delivered()
	if len(sent) != 2 {
		t.Fatalf("expected 2 delivered emails, got %d", len(sent))
	}
	if sent[0].Subject != "first" || sent[1].Subject != "second" {
		t.Fatalf("unexpected delivery order: %+v", sent)
	}
}

// TestDispatcherDropsWhenFull проверяет отбрасывание при полной очереди
// без блокировки вызывающей стороны.
func TestDispatcherDropsWhenFull(t *testing.T) {
	sender := &recordingSender{
		started: make(chan struct{}, 4),
		gate:    make(chan struct{}),
	}
	d := NewDispatcher(sender, 1)

	// Первое письмо занимает обработчика, второе заполняет очередь.
	d.Enqueue(Email{Subject: "in-flight"})
	select {
	case <-sender.started:
	case <-time.After(time.Second):
		t.Fatal("worker did not pick up the first email")
	}
	d.Enqueue(Email{Subject: "queued"})

	done := make(chan struct{})
	go func() {
		d.Enqueue(Email{Subject: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(sender.gate)
	d.Close()

	sent := sender.delivered()
	if len(sent) != 2 {
		t.Fatalf("expected 2 delivered emails, got %d", len(sent))
	}
	for _, email := range sent {
		if email.Subject == "dropped" {
			t.Fatal("dropped email must not be delivered")
		}
	}
}

// TestDispatcherSurvivesSendErrors проверяет, что ошибка отправки не
// останавливает обработчика.
func TestDispatcherSurvivesSendErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp gone")}
	d := NewDispatcher(sender, 4)

	d.Enqueue(Email{Subject: "first"})
	d.Enqueue(Email{Subject: "second"})
	d.Close()

	if len(sender.delivered()) != 2 {
		t.Fatal("worker must keep draining the queue after a send error")
	}
}

// TestDispatcherCloseIdempotent проверяет повторный Close.
func TestDispatcherCloseIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, 4)
	d.Close()
	d.Close()
}
