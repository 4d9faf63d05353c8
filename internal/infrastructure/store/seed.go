package store

import (
	"fmt"

	"github.com/shopsim/backend/internal/domain/shop"
)

// inStockRate is the probability that a seeded product is in stock.
const inStockRate = 0.9

// seed populates the product catalog and the initial user block. Caller
// holds the lock (or owns the store exclusively during construction).
func (s *Store) seed() {
	products := make([]shop.Product, s.cfg.Products)
	for i := range products {
		products[i] = shop.Product{
			ID:       i + 1,
			Name:     fmt.Sprintf("Product %d", i+1),
			Price:    10 + s.rnd.Intn(991), // uniform in [10, 1000]
			Category: shop.Categories[s.rnd.Intn(len(shop.Categories))],
			InStock:  s.rnd.Float64() < inStockRate,
		}
	}
	s.products = products

	users := make([]shop.User, s.cfg.Users)
	for i := range users {
		users[i] = shop.User{
			ID:    i + 1,
			Name:  fmt.Sprintf("User %d", i+1),
			Email: fmt.Sprintf("user%d@example.com", i+1),
		}
	}
	s.users = users
}
