package store

import (
	"context"
	"fmt"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/model"
)

func CreateHistory(ctx context.Context, db database.DB, h *model.History) (*model.History, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO histories (user_id, type, payload)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		h.UserID,
		h.Type,
		h.Payload,
	)
	if err := row.Scan(&h.ID, &h.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateHistory: %w", err)
	}
	return h, nil
}

// ListHistoryByUser returns the user's events newest first.
func ListHistoryByUser(ctx context.Context, db database.DB, userID int) ([]model.History, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, type, payload, created_at
		 FROM histories
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListHistoryByUser: %w", err)
	}
	defer rows.Close()

	var items []model.History
	for rows.Next() {
		var h model.History
		if err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Type,
			&h.Payload,
			&h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListHistoryByUser: %w", err)
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListHistoryByUser: %w", err)
	}
	return items, nil
}
