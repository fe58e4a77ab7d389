package store

import (
	"context"
	"fmt"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/model"
)

func CreatePerformance(ctx context.Context, db database.DB, p *model.Performance) (*model.Performance, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO performances (user_id, quiz_id, score, meta)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.UserID,
		p.QuizID,
		p.Score,
		p.Meta,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePerformance: %w", err)
	}
	return p, nil
}

// ListPerformanceByUser returns the user's quiz outcomes newest first.
func ListPerformanceByUser(ctx context.Context, db database.DB, userID int) ([]model.Performance, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, quiz_id, score, meta, created_at
		 FROM performances
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPerformanceByUser: %w", err)
	}
	defer rows.Close()

	var items []model.Performance
	for rows.Next() {
		var p model.Performance
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.QuizID,
			&p.Score,
			&p.Meta,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListPerformanceByUser: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPerformanceByUser: %w", err)
	}
	return items, nil
}
