// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/catalog"
	"affiliate-search/internal/database"
	"affiliate-search/internal/handler"
	"affiliate-search/internal/handler/affiliate"
	"affiliate-search/internal/handler/auth"
	"affiliate-search/internal/handler/search"
	"affiliate-search/internal/middleware"
	"affiliate-search/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cat catalog.Catalog, wp worker.Pool) {
	// 健康檢查（公開）
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))

	// 使用者註冊、登入與換發令牌
	apiAuth := e.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db, rdb))
	apiAuth.POST("/refresh", auth.RefreshHandler(db, rdb))

	// 商品搜尋：已登入版附追蹤連結，公開版不附
	apiSearch := e.Group("/search")
	apiSearch.GET("/products", search.ProductsHandler(cat), middleware.RequireAuth)
	apiSearch.GET("/public/products", search.PublicProductsHandler(cat))

	// 點擊追蹤與成效統計
	apiAffiliate := e.Group("/affiliate")
	apiAffiliate.POST("/click", affiliate.ClickHandler(db), middleware.RequireAuth)
	apiAffiliate.GET("/charities", affiliate.CharitiesHandler(db, rdb, wp))
	apiAffiliate.GET("/stats", affiliate.StatsHandler(db), middleware.RequireAuth)
}
