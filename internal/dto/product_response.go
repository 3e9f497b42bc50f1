// File: internal/dto/product_response.go
package dto

// ProductResponse 定義搜尋結果內的單一商品
// AffiliateURL 僅在已登入搜尋時帶值，公開搜尋一律為 null
// swagger:model dto.ProductResponse
type ProductResponse struct {
	ID           string  `json:"id" example:"p1"`
	Title        string  `json:"title" example:"Professional Broom"`
	Description  string  `json:"description" example:"High-quality broom for all your sweeping needs"`
	Price        float64 `json:"price" example:"19.99"`
	ImageURL     string  `json:"image_url" example:"https://example.com/broom.jpg"`
	Source       string  `json:"source" example:"amazon"`
	AffiliateURL *string `json:"affiliate_url" example:"https://amazon.com/product/p1?tag=affiliate&subid=u-1"`
}
