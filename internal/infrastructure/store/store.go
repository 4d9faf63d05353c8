// Package store holds the in-memory collections backing the mock API:
// a fixed seeded catalog, a growable user list, and an append-only order
// log. One Store instance is shared by all handlers; state lives for the
// process lifetime only.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopsim/backend/internal/domain/shared"
	"github.com/shopsim/backend/internal/domain/shop"
	"github.com/shopsim/backend/internal/infrastructure/simulation"
)

// Config controls how much seed data a Store starts with.
type Config struct {
	Products int
	Users    int
}

// Store is the process-wide data store. All mutable state (user list,
// order log, ID counters) sits behind one mutex, so ID assignment is
// serialized even under concurrent load.
type Store struct {
	mu       sync.Mutex
	cfg      Config
	rnd      simulation.Rand
	products []shop.Product
	users    []shop.User
	orders   []shop.Order

	cartCounter  int
	orderCounter int
}

// OrderInput carries the caller-supplied order fields. Reference fields
// are pointers because load test clients may omit any of them.
type OrderInput struct {
	UserID        *int
	ProductID     *int
	Quantity      int
	CartID        *int
	PaymentMethod string
}

// New seeds a store with cfg.Products products and cfg.Users users. The
// rand source drives product prices, categories and stock flags, so a
// fixed seed reproduces the same catalog.
func New(cfg Config, rnd simulation.Rand) *Store {
	s := &Store{cfg: cfg, rnd: rnd}
	s.seed()
	return s
}

// Reset drops all created users and orders, resets the counters and
// reseeds the catalog. Intended for test runs, not concurrent use.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartCounter = 0
	s.orderCounter = 0
	s.orders = nil
	s.seed()
}

// ListProducts returns the catalog filtered by a case-insensitive
// substring match on name or category, sorted by the given key. An
// unknown sort key leaves creation order untouched.
func (s *Store) ListProducts(search, sortBy string) []shop.Product {
	result := make([]shop.Product, 0, len(s.products))
	if search == "" {
		result = append(result, s.products...)
	} else {
		needle := strings.ToLower(search)
		for _, p := range s.products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle) {
				result = append(result, p)
			}
		}
	}

	switch sortBy {
	case "price":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case "name":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	}

	return result
}

// Products returns the full catalog in creation order. Callers must treat
// the slice as read-only.
func (s *Store) Products() []shop.Product {
	return s.products
}

// GetProduct returns the product with the given ID.
func (s *Store) GetProduct(id int) (shop.Product, error) {
	// Product IDs are 1-based positions in the seed order.
	if id < 1 || id > len(s.products) {
		return shop.Product{}, shared.ErrProductNotFound
	}
	return s.products[id-1], nil
}

// ListUsers returns all users in creation order.
func (s *Store) ListUsers() []shop.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(id int) (shop.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > len(s.users) {
		return shop.User{}, shared.ErrUserNotFound
	}
	return s.users[id-1], nil
}

// CreateUser appends a new user with id = current count + 1. With no
// deletions and ID assignment under the lock this is equivalent to a
// monotonic counter.
func (s *Store) CreateUser(name, email string) shop.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := shop.User{ID: len(s.users) + 1, Name: name, Email: email}
	s.users = append(s.users, u)
	return u
}

// UserCount returns the number of users.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// NextCartID allocates the next cart ID. The cart itself is never stored.
func (s *Store) NextCartID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartCounter++
	return s.cartCounter
}

// CreateOrder assigns the next order ID and appends the order. Callers run
// the payment failure gate first: a rejected payment must not reach this
// method, so the counter never advances on that path.
func (s *Store) CreateOrder(in OrderInput) shop.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderCounter++
	o := shop.Order{
		OrderID:       s.orderCounter,
		UserID:        in.UserID,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		CartID:        in.CartID,
		PaymentMethod: in.PaymentMethod,
		Status:        shop.OrderStatusConfirmed,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
	s.orders = append(s.orders, o)
	return o
}

// GetOrder returns the order with the given ID.
func (s *Store) GetOrder(id int) (shop.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > len(s.orders) {
		return shop.Order{}, shared.ErrOrderNotFound
	}
	return s.orders[id-1], nil
}

// OrderCount returns the number of stored orders.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
