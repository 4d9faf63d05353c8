package shop

// User is a registered shopper. The first block of users is seeded at
// startup; additional users are appended via the create endpoint.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
