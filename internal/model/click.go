// File: internal/model/click.go
package model

import "time"

type Click struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	ProductID        string    `db:"product_id" json:"product_id"`
	AffiliateNetwork string    `db:"affiliate_network" json:"affiliate_network"`
	CreatedAt        time.Time `db:"created_at" json:"timestamp"`
}
