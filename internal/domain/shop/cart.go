package shop

// CartItem is the request-side shape for cart operations. It is never
// persisted; it only seeds ephemeral Cart responses.
type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CartLine is a cart entry holding a snapshot of the product at the time
// the cart was built.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ephemeral cart. Carts receive a process-lifetime unique ID but
// are never stored: fetching a cart by ID always yields an empty one.
type Cart struct {
	CartID int        `json:"cartId"`
	Items  []CartLine `json:"items"`
	Total  int        `json:"total"`
}

// NewCart builds a single-line cart for the given product snapshot.
func NewCart(cartID int, product Product, quantity int) Cart {
	return Cart{
		CartID: cartID,
		Items:  []CartLine{{Product: product, Quantity: quantity}},
		Total:  product.Price * quantity,
	}
}

// EmptyCart is the stub returned when a cart is fetched by ID.
func EmptyCart(cartID int) Cart {
	return Cart{CartID: cartID, Items: []CartLine{}, Total: 0}
}
