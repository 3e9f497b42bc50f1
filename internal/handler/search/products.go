// File: internal/handler/search/products.go
package search

import (
	"net/http"

	"affiliate-search/internal/catalog"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/middleware"

	"github.com/labstack/echo/v4"
)

// toResponses 套用型錄過濾並組裝回應
// callerID 非空時為每筆結果附加使用者追蹤連結
func toResponses(cat catalog.Catalog, query, callerID string) []dto.ProductResponse {
	results := []dto.ProductResponse{}
	for _, p := range cat.Search(query) {
		resp := dto.ProductResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Source:      p.Source,
		}
		if callerID != "" {
			url := p.BaseAffiliateURL + callerID
			resp.AffiliateURL = &url
		}
		results = append(results, resp)
	}
	return results
}

// ProductsHandler 已登入搜尋，結果附加呼叫者的追蹤連結
// @Summary     搜尋商品
// @Description 對型錄做不分大小寫的子字串過濾，每筆結果附加呼叫者專屬 affiliate_url
// @Tags        search
// @Produce     json
// @Param       query query string true "搜尋字串，可為空字串"
// @Success     200 {array}  dto.ProductResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /search/products [get]
func ProductsHandler(cat catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !c.QueryParams().Has("query") {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "missing query parameter"})
		}

		// RequireAuth 保證 claims 存在；缺少時視為未授權
		callerID, ok := middleware.CallerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		return c.JSON(http.StatusOK, toResponses(cat, c.QueryParam("query"), callerID))
	}
}

// PublicProductsHandler 公開搜尋，不產生追蹤連結
// @Summary     公開搜尋商品
// @Description 與已登入搜尋相同的過濾，affiliate_url 一律為 null
// @Tags        search
// @Produce     json
// @Param       query query string true "搜尋字串，可為空字串"
// @Success     200 {array}  dto.ProductResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /search/public/products [get]
func PublicProductsHandler(cat catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !c.QueryParams().Has("query") {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "missing query parameter"})
		}
		return c.JSON(http.StatusOK, toResponses(cat, c.QueryParam("query"), ""))
	}
}
