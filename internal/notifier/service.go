package notifier

import (
	"context"
	"encoding/json"
	"log"

	kafkax "github.com/RSO-team2/reservation-management/internal/kafka"
	"github.com/RSO-team2/reservation-management/internal/reservations"
	kafkago "github.com/segmentio/kafka-go"
)

// Dedup is the subset of the redis-backed dedup store the service needs.
type Dedup interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

// Service delivers customer notifications for created reservations. Delivery
// here is a structured log line; the consumer/dedup plumbing is what keeps
// redelivered events from notifying twice.
type Service struct {
	Dedup       Dedup
	ServiceName string
}

// HandleReservationCreated is wired as the consumer handler for the
// reservation.created topic.
func (s *Service) HandleReservationCreated(ctx context.Context, m kafkago.Message) error {
	var env reservations.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != reservations.EventReservationCreated {
		return nil // ignore
	}

	if seen, err := s.Dedup.Seen(ctx, env.EventID); err == nil && seen {
		return nil
	}

	p, err := kafkax.UnwrapPayload[reservations.ReservationCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	log.Printf("%s: notify reservation=%d customer=%d restaurant=%d date=%s trace=%s",
		s.ServiceName, p.ReservationID, p.CustomerID, p.RestaurantID, p.ReservationDate, env.TraceID)

	return s.Dedup.Mark(ctx, env.EventID)
}
