package reservations

// NewReservation carries the fields a client supplies when booking. Dates
// arrive as strings and are handed to the database untouched; a value the
// date columns cannot accept surfaces as a storage error.
type NewReservation struct {
	CustomerID      int64   `json:"customer_id"`
	RestaurantID    int64   `json:"restaurant_id"`
	MakeDate        string  `json:"make_date"`
	ReservationDate string  `json:"reservation_date"`
	NumPersons      int     `json:"num_persons"`
	OptionalMessage *string `json:"optional_message"`
}

// CustomerReservation is the projection returned when listing by customer.
// The filtering key is not echoed back.
type CustomerReservation struct {
	ReservationID   int64   `json:"reservation_id"`
	RestaurantID    int64   `json:"restaurant_id"`
	ReservationDate string  `json:"reservation_date"`
	NumberGuests    int     `json:"number_guests"`
	Message         *string `json:"message"`
}

// RestaurantReservation mirrors CustomerReservation for the by-restaurant
// listing, echoing the customer as user_id instead.
type RestaurantReservation struct {
	ReservationID   int64   `json:"reservation_id"`
	UserID          int64   `json:"user_id"`
	ReservationDate string  `json:"reservation_date"`
	NumberGuests    int     `json:"number_guests"`
	Message         *string `json:"message"`
}
