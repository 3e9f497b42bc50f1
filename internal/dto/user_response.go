// File: internal/dto/user_response.go
package dto

import "time"

// UserResponse 定義回傳的使用者資訊
// swagger:model dto.UserResponse
type UserResponse struct {
	// 使用者 ID
	ID string `json:"id" example:"b2f7d1c0-5a3e-4e8e-9b1f-0c9d8e7f6a5b"`

	// 使用者 Email
	Email string `json:"email" example:"alice@example.com"`

	// 帳號是否啟用
	IsActive bool `json:"is_active" example:"true"`

	// 建立時間 (RFC3339 格式)
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
