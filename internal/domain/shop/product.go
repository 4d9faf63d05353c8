package shop

// Categories lists the category values assigned to seeded products.
var Categories = []string{"Electronics", "Clothing", "Books", "Home"}

// Product is a catalog item. The catalog is seeded once at startup and is
// immutable afterwards; IDs are 1-based in creation order.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	InStock  bool   `json:"inStock"`
}

// FlashSaleProduct is a product with a discount applied. Price holds the
// discounted value, OriginalPrice the seeded one.
type FlashSaleProduct struct {
	Product
	OriginalPrice int `json:"originalPrice"`
	Discount      int `json:"discount"`
}

// FlashSalePercent is the discount applied to flash sale items.
const FlashSalePercent = 30

// ApplyFlashSale returns a copy of p with the flash sale discount applied.
// The discounted price is truncated to an integer.
func ApplyFlashSale(p Product) FlashSaleProduct {
	sale := FlashSaleProduct{
		Product:       p,
		OriginalPrice: p.Price,
		Discount:      FlashSalePercent,
	}
	sale.Price = p.Price * (100 - FlashSalePercent) / 100
	return sale
}
