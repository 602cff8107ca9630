package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	kafkax "github.com/RSO-team2/reservation-management/internal/kafka"
	"github.com/RSO-team2/reservation-management/internal/reservations"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is the fire-and-forget side of the Kafka producer. A nil
// Publisher disables notifications; the endpoints work without it.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header) bool
}

type ReservationsHandler struct {
	Store    reservations.Store
	Producer Publisher
	Service  string
}

type createReservationResp struct {
	ReservationID int64  `json:"reservation_id"`
	Message       string `json:"Message"`
}

func (h *ReservationsHandler) Register(r *chi.Mux) {
	r.Get("/health", h.health)
	r.Post("/make_reservation", h.makeReservation)
	r.Get("/get_reservations_by_user", h.listByUser)
	r.Get("/get_reservations_by_restaurant", h.listByRestaurant)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// requiredFields must all be present in the create body. optional_message is
// required to be present but may be null.
var requiredFields = []string{
	"customer_id", "restaurant_id", "make_date",
	"reservation_date", "num_persons", "optional_message",
}

func (h *ReservationsHandler) makeReservation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	for _, f := range requiredFields {
		if _, ok := raw[f]; !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required field: " + f})
			return
		}
	}

	var req reservations.NewReservation
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Create(ctx, req)
	if err != nil {
		log.Printf("create reservation: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage_unavailable"})
		return
	}

	h.publishCreated(r, id, req)

	writeJSON(w, http.StatusCreated, createReservationResp{
		ReservationID: id,
		Message:       fmt.Sprintf("Reservation %d created.", id),
	})
}

// publishCreated emits the reservation.created event. Best-effort: a full
// inbox or an absent producer never affects the response.
func (h *ReservationsHandler) publishCreated(r *http.Request, id int64, req reservations.NewReservation) {
	if h.Producer == nil {
		return
	}
	ev := reservations.Envelope{
		EventID:       uuid.NewString(),
		EventType:     reservations.EventReservationCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: strconv.FormatInt(id, 10),
	}
	ev.Payload = kafkax.MustMarshal(reservations.ReservationCreatedPayload{
		ReservationID:   id,
		CustomerID:      req.CustomerID,
		RestaurantID:    req.RestaurantID,
		ReservationDate: req.ReservationDate,
	})
	ok := h.Producer.Publish(reservations.PartitionKey(id), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(reservations.EventReservationCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	if !ok {
		log.Printf("reservation.created dropped: producer inbox full, reservation=%d", id)
	}
}

func (h *ReservationsHandler) listByUser(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer_id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	rs, err := h.Store.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Printf("list reservations by customer: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage_unavailable"})
		return
	}
	if len(rs) == 0 {
		// contract: empty result is a 200 with an error field, not a 404
		writeJSON(w, http.StatusOK, map[string]string{"error": "No reservations found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": rs})
}

func (h *ReservationsHandler) listByRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(r.URL.Query().Get("restaurant_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid restaurant_id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	rs, err := h.Store.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("list reservations by restaurant: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage_unavailable"})
		return
	}
	if len(rs) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"error": "No reservations found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": rs})
}

// health is a liveness probe only; it answers from a trivial round trip and
// never leaks the underlying error.
func (h *ReservationsHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Healthy(ctx); err != nil {
		log.Printf("health check: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Service is unhealthy"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Service is healthy"))
}
