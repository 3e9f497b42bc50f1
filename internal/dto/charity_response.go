// File: internal/dto/charity_response.go
package dto

// swagger:model dto.CharityResponse
type CharityResponse struct {
	ID          string `json:"id" example:"c1"`
	Name        string `json:"name" example:"Clean Oceans Fund"`
	Description string `json:"description" example:"Removes plastic waste from coastal waters"`
	Website     string `json:"website" example:"https://example.org/clean-oceans"`
}
