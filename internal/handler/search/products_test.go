package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"affiliate-search/internal/catalog"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/middleware"
	"affiliate-search/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newSearchCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []dto.ProductResponse {
	t.Helper()
	var got []dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestProductsHandler(t *testing.T) {
	cat := catalog.Default()
	e := echo.New()

	// 缺少 query 參數
	ctx, rec := newSearchCtx(e, "/search/products")
	require.NoError(t, ProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// context 無 claims
	ctx, rec = newSearchCtx(e, "/search/products?query=broom")
	require.NoError(t, ProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 已登入搜尋附加追蹤連結
	ctx, rec = newSearchCtx(e, "/search/products?query=broom")
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: "u-1"})
	require.NoError(t, ProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeProducts(t, rec)
	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, "p2", got[1].ID)
	require.NotNil(t, got[0].AffiliateURL)
	require.Equal(t, "https://amazon.com/product/p1?tag=affiliate&subid=u-1", *got[0].AffiliateURL)
	require.Equal(t, "https://walmart.com/item/p2?affiliateid=main&sid=u-1", *got[1].AffiliateURL)

	// 空字串回傳整個型錄
	ctx, rec = newSearchCtx(e, "/search/products?query=")
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: "u-1"})
	require.NoError(t, ProductsHandler(cat)(ctx))
	require.Len(t, decodeProducts(t, rec), cat.Len())

	// 無符合項目回傳空陣列
	ctx, rec = newSearchCtx(e, "/search/products?query=nonexistent-xyz")
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: "u-1"})
	require.NoError(t, ProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeProducts(t, rec))
}

func TestPublicProductsHandler(t *testing.T) {
	cat := catalog.Default()
	e := echo.New()

	// 缺少 query 參數
	ctx, rec := newSearchCtx(e, "/search/public/products")
	require.NoError(t, PublicProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 公開搜尋結果集與已登入搜尋相同，但無追蹤連結
	ctx, rec = newSearchCtx(e, "/search/public/products?query=BROOM")
	require.NoError(t, PublicProductsHandler(cat)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeProducts(t, rec)
	require.Len(t, got, 2)
	for _, p := range got {
		require.Nil(t, p.AffiliateURL)
	}

	// 大小寫不敏感的描述比對
	ctx, rec = newSearchCtx(e, "/search/public/products?query=ERGONOMIC")
	require.NoError(t, PublicProductsHandler(cat)(ctx))
	got = decodeProducts(t, rec)
	require.Len(t, got, 1)
	require.Equal(t, "p2", got[0].ID)
}
