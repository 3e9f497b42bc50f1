// File: internal/handler/affiliate/charities.go
package affiliate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/store"
	"affiliate-search/internal/worker"

	"github.com/labstack/echo/v4"
)

const (
	charitiesCacheKey = "charities"
	charitiesCacheTTL = 10 * time.Minute
)

// CharitiesHandler 列出所有慈善機構
// 先讀 Redis 快取，未命中時查資料庫並交由 worker 補快取，回應不等待快取寫入
// @Summary     列出慈善機構
// @Description 回傳所有慈善機構，依存放順序
// @Tags        affiliate
// @Produce     json
// @Success     200 {array}  dto.CharityResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /affiliate/charities [get]
func CharitiesHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 快取命中直接回傳
		if raw, err := rdb.Get(ctx, charitiesCacheKey).Result(); err == nil {
			var cached []dto.CharityResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		charities, err := store.ListCharities(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := []dto.CharityResponse{}
		for _, ch := range charities {
			resp = append(resp, dto.CharityResponse{
				ID:          ch.ID,
				Name:        ch.Name,
				Description: ch.Description,
				Website:     ch.Website,
			})
		}

		if payload, err := json.Marshal(resp); err == nil {
			wp.Submit(func() {
				// request context 在回應後即失效，補快取使用獨立 context
				rdb.Set(context.Background(), charitiesCacheKey, payload, charitiesCacheTTL)
			})
		}

		return c.JSON(http.StatusOK, resp)
	}
}
