// File: internal/dto/click_response.go
package dto

import "time"

// swagger:model dto.ClickResponse
type ClickResponse struct {
	ID               string    `json:"id" example:"7a1e9c2d-..."`
	UserID           string    `json:"user_id" example:"b2f7d1c0-..."`
	ProductID        string    `json:"product_id" example:"p1"`
	AffiliateNetwork string    `json:"affiliate_network" example:"amazon"`
	Timestamp        time.Time `json:"timestamp" example:"2025-05-09T15:04:05Z07:00"`
}
