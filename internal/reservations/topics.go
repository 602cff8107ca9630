package reservations

import "strconv"

const TopicReservationCreated = "reservation.created"

// Partition key = reservation id, so every event for one reservation keeps
// its order.
func PartitionKey(reservationID int64) []byte {
	return []byte(strconv.FormatInt(reservationID, 10))
}
