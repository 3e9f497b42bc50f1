// File: internal/service/refresh.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"affiliate-search/internal/cache"
)

var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenData 為存入 Redis 的 refresh token 負載
type RefreshTokenData struct {
	UserID string `json:"user_id"`
}

// IssueRefreshToken 產生不透明 refresh token 並以 TTL 存入 Redis
func IssueRefreshToken(ctx context.Context, c cache.Cache, userID string, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	payload, err := jsonMarshal(RefreshTokenData{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}

	if err := c.Set(ctx, refreshKeyPrefix+token, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return token, nil
}

// ValidateRefreshToken 驗證 refresh token 並回傳其負載
// 不存在或已過期的 token 一律回傳錯誤
func ValidateRefreshToken(ctx context.Context, c cache.Cache, token string) (*RefreshTokenData, error) {
	raw, err := c.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}

	data := &RefreshTokenData{}
	if err := jsonUnmarshal([]byte(raw), data); err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}
	return data, nil
}

// RevokeRefreshToken 刪除 refresh token，登出時使用
func RevokeRefreshToken(ctx context.Context, c cache.Cache, token string) error {
	if err := c.Del(ctx, refreshKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("RevokeRefreshToken: %w", err)
	}
	return nil
}
