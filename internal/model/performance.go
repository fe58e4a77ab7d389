package model

import "time"

// Performance records one quiz outcome. QuizID and Meta are optional;
// Meta holds canonical JSON text when present.
type Performance struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	QuizID    *string   `db:"quiz_id" json:"quiz_id"`
	Score     int       `db:"score" json:"score"`
	Meta      *string   `db:"meta" json:"meta"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
