// File: internal/handler/health.go
package handler

import (
	"net/http"

	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"

	"github.com/labstack/echo/v4"
)

// RootResponse 歡迎訊息回應模型
// swagger:model RootResponse
type RootResponse struct {
	// 回應訊息
	Message string `json:"message" example:"Welcome to the Affiliate Search API"`
}

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 服務狀態
	Status string `json:"status" example:"healthy"`
}

// RootHandler 服務歡迎訊息
// @Summary     Liveness message
// @Description 回傳歡迎訊息
// @Tags        health
// @Produce     json
// @Success     200 {object} RootResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, RootResponse{Message: "Welcome to the Affiliate Search API"})
	}
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳服務狀態，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
