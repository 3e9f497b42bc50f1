// File: internal/dto/stats_response.go
package dto

// StatsResponse 為呼叫者本人的成效彙總，不含跨使用者資料
// swagger:model dto.StatsResponse
type StatsResponse struct {
	ClickCount           int     `json:"click_count" example:"12"`
	TransactionCount     int     `json:"transaction_count" example:"2"`
	TotalEarnings        float64 `json:"total_earnings" example:"12.5"`
	TotalCharityDonation float64 `json:"total_charity_donation" example:"1.25"`
}
