package shop

// OrderStatusConfirmed is the only status an order can hold: failed
// payments never produce an order at all.
const OrderStatusConfirmed = "confirmed"

// Order is a confirmed purchase. Orders are append-only; they are never
// updated or deleted. The reference fields are nullable because load test
// clients submit whichever subset they exercise.
type Order struct {
	OrderID       int    `json:"orderId"`
	UserID        *int   `json:"userId"`
	ProductID     *int   `json:"productId"`
	Quantity      int    `json:"quantity"`
	CartID        *int   `json:"cartId"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}
