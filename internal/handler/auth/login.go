// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/service"
	"affiliate-search/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與 refresh token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} dto.TokenResponse
// @Failure     400      {object} dto.HTTPError
// @Failure     401      {object} dto.HTTPError
// @Failure     500      {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 撈使用者資料；找不到與密碼錯誤回應一致，避免洩漏帳號存在與否
		user, err := store.GetUserByEmail(ctx, db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		// 驗證密碼
		if err := service.AuthenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		// 發行存取令牌
		token, err := service.IssueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		// 發行 refresh token
		refreshToken, err := service.IssueRefreshToken(ctx, rdb, user.ID, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue refresh token"})
		}

		resp := dto.TokenResponse{
			AccessToken:  token,
			TokenType:    "Bearer",
			ExpiresIn:    int(accessTokenTTL.Seconds()),
			RefreshToken: refreshToken,
		}
		return c.JSON(http.StatusOK, resp)
	}
}
