package store

import (
	"context"
	"fmt"

	"affiliate-search/internal/database"
	"affiliate-search/internal/model"
)

func GetCharityByID(ctx context.Context, db database.DB, charityID string) (*model.Charity, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, website
		 FROM charities WHERE id = $1`,
		charityID,
	)
	ch := &model.Charity{}
	if err := row.Scan(
		&ch.ID,
		&ch.Name,
		&ch.Description,
		&ch.Website,
	); err != nil {
		return nil, fmt.Errorf("GetCharityByID: %w", err)
	}
	return ch, nil
}

// ListCharities 依存放順序回傳所有慈善機構
func ListCharities(ctx context.Context, db database.DB) ([]model.Charity, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, website FROM charities`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCharities: %w", err)
	}
	defer rows.Close()

	charities := []model.Charity{}
	for rows.Next() {
		var ch model.Charity
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Description, &ch.Website); err != nil {
			return nil, fmt.Errorf("ListCharities: %w", err)
		}
		charities = append(charities, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCharities: %w", err)
	}
	return charities, nil
}
