package shop

// Review is a synthetic product review. Reviews are generated per request
// and never stored.
type Review struct {
	ID      int    `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}
