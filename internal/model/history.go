package model

import "time"

// History is one append-only activity event owned by a user. Payload holds
// the canonical JSON text produced by Document.
type History struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Payload   string    `db:"payload" json:"payload"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
