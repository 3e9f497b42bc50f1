// File: internal/catalog/catalog.go
package catalog

import "strings"

// Product 為型錄內的單一商品
// BaseAffiliateURL 結尾預留 subid 參數，附加使用者 ID 即成為追蹤連結
type Product struct {
	ID               string
	Title            string
	Description      string
	Price            float64
	ImageURL         string
	Source           string
	BaseAffiliateURL string
}

// Catalog 為唯讀商品型錄，啟動時注入
// 實際部署可改由外部供應商載入，不需改動 handler
type Catalog struct {
	products []Product
}

// New 以給定商品建立型錄，保留傳入順序
func New(products []Product) Catalog {
	return Catalog{products: products}
}

// Default 回傳內建的示範型錄
func Default() Catalog {
	return New([]Product{
		{
			ID:               "p1",
			Title:            "Professional Broom",
			Description:      "High-quality broom for all your sweeping needs",
			Price:            19.99,
			ImageURL:         "https://example.com/broom.jpg",
			Source:           "amazon",
			BaseAffiliateURL: "https://amazon.com/product/p1?tag=affiliate&subid=",
		},
		{
			ID:               "p2",
			Title:            "Luxury Broom Plus",
			Description:      "Premium broom with ergonomic handle and extra-wide sweep",
			Price:            29.99,
			ImageURL:         "https://example.com/luxury-broom.jpg",
			Source:           "walmart",
			BaseAffiliateURL: "https://walmart.com/item/p2?affiliateid=main&sid=",
		},
	})
}

// Search 對標題與描述做不分大小寫的子字串過濾，維持型錄順序
// 空字串視為全部符合
func (c Catalog) Search(query string) []Product {
	q := strings.ToLower(query)
	results := []Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
		}
	}
	return results
}

// Len 回傳型錄大小
func (c Catalog) Len() int {
	return len(c.products)
}
