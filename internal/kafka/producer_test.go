package kafka

import (
	"testing"
	"time"
)

// Publish must never block the caller: once the inbox is full the event is
// dropped and the caller is told so.
func TestPublishDoesNotBlockWhenInboxFull(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "reservation.created", 1)

	if ok := p.Publish([]byte("1"), []byte(`{}`)); !ok {
		t.Fatal("first publish should fit in the inbox")
	}

	done := make(chan bool, 1)
	go func() { done <- p.Publish([]byte("2"), []byte(`{}`)) }()

	select {
	case ok := <-done:
		if ok {
			t.Error("second publish reported success with a full inbox")
		}
	case <-time.After(time.Second):
		t.Error("publish blocked on a full inbox")
	}
}
