package models

// User represents a registered participant.
//
// Users are immutable after creation: there is no update or delete operation,
// only the administrative bulk clear removes them.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique display name chosen at registration.
	Username string

	// Email is the user's unique email address.
	Email string

	// CreatedAt is the Unix timestamp when the user registered.
	CreatedAt int64
}
