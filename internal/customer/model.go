package customer

import "time"

// Customer represents a registered wallet owner. Records are immutable after
// registration; there is no update or delete operation.
type Customer struct {
	ID           string
	Document     string
	Name         string
	Email        string
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}
