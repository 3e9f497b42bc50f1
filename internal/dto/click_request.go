// File: internal/dto/click_request.go
package dto

// swagger:model dto.ClickRequest
type ClickRequest struct {
	ProductID        string `json:"product_id" form:"product_id" validate:"required" example:"p1"`
	AffiliateNetwork string `json:"affiliate_network" form:"affiliate_network" validate:"required" example:"amazon"`
}
