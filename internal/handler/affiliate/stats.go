// File: internal/handler/affiliate/stats.go
package affiliate

import (
	"net/http"

	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/middleware"
	"affiliate-search/internal/store"

	"github.com/labstack/echo/v4"
)

// StatsHandler 回傳呼叫者本人的成效彙總
// @Summary     查詢個人成效
// @Description 彙總呼叫者的點擊數、交易數、佣金總額與捐款總額
// @Tags        affiliate
// @Produce     json
// @Success     200 {object} dto.StatsResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /affiliate/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		callerID, ok := middleware.CallerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		clickCount, err := store.CountClicksByUser(ctx, db, callerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		summary, err := store.SummarizeTransactionsByUser(ctx, db, callerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := dto.StatsResponse{
			ClickCount:           clickCount,
			TransactionCount:     summary.Count,
			TotalEarnings:        summary.TotalCommission,
			TotalCharityDonation: summary.TotalCharityAmount,
		}
		return c.JSON(http.StatusOK, resp)
	}
}
