// File: internal/handler/affiliate/click.go
package affiliate

import (
	"net/http"

	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/middleware"
	"affiliate-search/internal/model"
	"affiliate-search/internal/store"

	"github.com/labstack/echo/v4"
)

// ClickHandler 紀錄一次商品點擊
// product_id 不與型錄驗證，型錄為外部資料來源
// @Summary     紀錄點擊
// @Description 為呼叫者新增一筆點擊事件
// @Tags        affiliate
// @Accept      json
// @Produce     json
// @Param       body body dto.ClickRequest true "點擊內容"
// @Success     201 {object} dto.ClickResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /affiliate/click [post]
func ClickHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ClickRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		callerID, ok := middleware.CallerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		click := &model.Click{
			UserID:           callerID,
			ProductID:        req.ProductID,
			AffiliateNetwork: req.AffiliateNetwork,
		}
		created, err := store.CreateClick(c.Request().Context(), db, click)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := dto.ClickResponse{
			ID:               created.ID,
			UserID:           created.UserID,
			ProductID:        created.ProductID,
			AffiliateNetwork: created.AffiliateNetwork,
			Timestamp:        created.CreatedAt,
		}
		return c.JSON(http.StatusCreated, resp)
	}
}
