// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/service"
	"affiliate-search/internal/store"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以 refresh token 換發新的存取令牌
// @Summary     換發存取令牌
// @Description 驗證 refresh token 後重新發行 JWT，refresh token 沿用
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       refresh_token formData string true "Refresh token"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req dto.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		data, err := service.ValidateRefreshToken(ctx, rdb, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid refresh token"})
		}

		// 確認使用者仍存在且啟用
		user, err := store.GetUserByID(ctx, db, data.UserID)
		if err != nil || !user.IsActive {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid refresh token"})
		}

		token, err := service.IssueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		resp := dto.TokenResponse{
			AccessToken:  token,
			TokenType:    "Bearer",
			ExpiresIn:    int(accessTokenTTL.Seconds()),
			RefreshToken: req.RefreshToken,
		}
		return c.JSON(http.StatusOK, resp)
	}
}
