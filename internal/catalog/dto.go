package catalog

import "time"

// CatalogProduct is the public listing shape for one product.
type CatalogProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

// Catalog is the storefront payload: all active products grouped by
// manufacturer, plus flat and index views of the same data.
type Catalog struct {
	GeneratedAt     time.Time                   `json:"generatedAt"`
	TotalProducts   int                         `json:"totalProducts"`
	TotalBrands     int                         `json:"totalBrands"`
	ProductsByBrand map[string][]CatalogProduct `json:"productsByBrand"`
	AllProducts     []CatalogProduct            `json:"allProducts"`
	Brands          []string                    `json:"brands"`
}
