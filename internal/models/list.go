package models

import "time"

// MovieList is an ordered list of movie titles owned by a single user.
type MovieList struct {
	ID            string    `json:"id"`
	OwnerID       int       `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"` // joined from users at read time
	Title         string    `json:"title"`
	Movies        []string  `json:"movies"` // order is meaningful
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
