// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/model"
	"affiliate-search/internal/service"
	"affiliate-search/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// pgUniqueViolation 為 PostgreSQL unique constraint 違反的錯誤碼
const pgUniqueViolation = "23505"

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 使用 Email 與 Password 建立新帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼 (至少 8 碼)"
// @Success     201      {object} dto.UserResponse
// @Failure     400      {object} dto.HTTPError
// @Failure     409      {object} dto.HTTPError
// @Failure     500      {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 密碼哈希
		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
		}

		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			// unique constraint 違反 → Email 已註冊
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := dto.UserResponse{
			ID:        created.ID,
			Email:     created.Email,
			IsActive:  created.IsActive,
			CreatedAt: created.CreatedAt,
		}
		return c.JSON(http.StatusCreated, resp)
	}
}
