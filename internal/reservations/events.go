package reservations

import (
	"encoding/json"
	"time"
)

const EventReservationCreated = "ReservationCreated"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // reservation id
	Payload       json.RawMessage `json:"payload"`
}

type ReservationCreatedPayload struct {
	ReservationID   int64  `json:"reservation_id"`
	CustomerID      int64  `json:"customer_id"`
	RestaurantID    int64  `json:"restaurant_id"`
	ReservationDate string `json:"reservation_date"`
}
