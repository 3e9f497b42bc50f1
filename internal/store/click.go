package store

import (
	"context"
	"fmt"

	"affiliate-search/internal/database"
	"affiliate-search/internal/model"
)

func CreateClick(ctx context.Context, db database.DB, c *model.Click) (*model.Click, error) {
	c.ID = newUUID()
	row := db.QueryRow(ctx,
		`INSERT INTO clicks (id, user_id, product_id, affiliate_network)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		c.ID,
		c.UserID,
		c.ProductID,
		c.AffiliateNetwork,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateClick: %w", err)
	}
	return c, nil
}

func CountClicksByUser(ctx context.Context, db database.DB, userID string) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM clicks WHERE user_id = $1`,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountClicksByUser: %w", err)
	}
	return count, nil
}
