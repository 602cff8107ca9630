package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkax "github.com/RSO-team2/reservation-management/internal/kafka"
	"github.com/RSO-team2/reservation-management/internal/reservations"
	kafkago "github.com/segmentio/kafka-go"
)

type fakeDedup struct {
	seen   map[string]bool
	marked []string
}

func (f *fakeDedup) Seen(ctx context.Context, eventID string) (bool, error) {
	return f.seen[eventID], nil
}

func (f *fakeDedup) Mark(ctx context.Context, eventID string) error {
	f.marked = append(f.marked, eventID)
	return nil
}

func createdMessage(t *testing.T, eventID string) kafkago.Message {
	t.Helper()
	env := reservations.Envelope{
		EventID:      eventID,
		EventType:    reservations.EventReservationCreated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "reservation-api",
		Payload: kafkax.MustMarshal(reservations.ReservationCreatedPayload{
			ReservationID:   1,
			CustomerID:      1,
			RestaurantID:    1,
			ReservationDate: "2025-01-12",
		}),
	}
	return kafkago.Message{Key: reservations.PartitionKey(1), Value: kafkax.MustMarshal(env)}
}

func TestHandleReservationCreated(t *testing.T) {
	dedup := &fakeDedup{seen: map[string]bool{}}
	svc := &Service{Dedup: dedup, ServiceName: "notifier-test"}

	if err := svc.HandleReservationCreated(context.Background(), createdMessage(t, "ev-1")); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "ev-1" {
		t.Errorf("marked = %v, want [ev-1]", dedup.marked)
	}
}

func TestHandleReservationCreatedDuplicate(t *testing.T) {
	dedup := &fakeDedup{seen: map[string]bool{"ev-1": true}}
	svc := &Service{Dedup: dedup, ServiceName: "notifier-test"}

	if err := svc.HandleReservationCreated(context.Background(), createdMessage(t, "ev-1")); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(dedup.marked) != 0 {
		t.Errorf("duplicate event was re-marked: %v", dedup.marked)
	}
}

func TestHandleReservationCreatedIgnoresOtherEvents(t *testing.T) {
	dedup := &fakeDedup{seen: map[string]bool{}}
	svc := &Service{Dedup: dedup, ServiceName: "notifier-test"}

	env := reservations.Envelope{
		EventID:   "ev-2",
		EventType: "SomethingElse",
		Payload:   json.RawMessage(`{}`),
	}
	m := kafkago.Message{Value: kafkax.MustMarshal(env)}
	if err := svc.HandleReservationCreated(context.Background(), m); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(dedup.marked) != 0 {
		t.Errorf("unrelated event was marked: %v", dedup.marked)
	}
}

func TestHandleReservationCreatedBadEnvelope(t *testing.T) {
	svc := &Service{Dedup: &fakeDedup{seen: map[string]bool{}}, ServiceName: "notifier-test"}

	m := kafkago.Message{Value: []byte("{not json")}
	if err := svc.HandleReservationCreated(context.Background(), m); err == nil {
		t.Error("expected error for malformed envelope")
	}
}
