package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// Store is what the HTTP layer depends on; *Repo is the pgx-backed
// implementation.
type Store interface {
	Create(ctx context.Context, n NewReservation) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]CustomerReservation, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]RestaurantReservation, error)
	Healthy(ctx context.Context) error
}

type Repo struct{ DB *pgxpool.Pool }

var _ Store = (*Repo)(nil)

// Create inserts one row and returns the generated id. The insert runs in
// its own transaction: committed on success, rolled back on every other
// exit path.
func (r *Repo) Create(ctx context.Context, n NewReservation) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO reservations(customer_id, restaurant_id, make_date, reservation_date, num_persons, optional_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		n.CustomerID, n.RestaurantID, n.MakeDate, n.ReservationDate, n.NumPersons, n.OptionalMessage,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// ListByCustomer returns every reservation for the customer. No ORDER BY is
// applied; callers must not assume ordering. Zero rows is not an error.
func (r *Repo) ListByCustomer(ctx context.Context, customerID int64) ([]CustomerReservation, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, restaurant_id, reservation_date, num_persons, optional_message
		FROM reservations
		WHERE customer_id = $1`, customerID)
	if err != nil {
		return nil, fmt.Errorf("query reservations by customer: %w", err)
	}
	defer rows.Close()

	var out []CustomerReservation
	for rows.Next() {
		var (
			cr   CustomerReservation
			date time.Time
		)
		if err := rows.Scan(&cr.ReservationID, &cr.RestaurantID, &date, &cr.NumberGuests, &cr.Message); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		cr.ReservationDate = date.Format(dateLayout)
		out = append(out, cr)
	}
	return out, rows.Err()
}

// ListByRestaurant is symmetric to ListByCustomer, keyed on restaurant_id
// and echoing the customer as user_id.
func (r *Repo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]RestaurantReservation, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, customer_id, reservation_date, num_persons, optional_message
		FROM reservations
		WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("query reservations by restaurant: %w", err)
	}
	defer rows.Close()

	var out []RestaurantReservation
	for rows.Next() {
		var (
			rr   RestaurantReservation
			date time.Time
		)
		if err := rows.Scan(&rr.ReservationID, &rr.UserID, &date, &rr.NumberGuests, &rr.Message); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		rr.ReservationDate = date.Format(dateLayout)
		out = append(out, rr)
	}
	return out, rows.Err()
}

// Healthy does a trivial round trip against the pool.
func (r *Repo) Healthy(ctx context.Context) error {
	var one int
	if err := r.DB.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("health query: %w", err)
	}
	return nil
}
