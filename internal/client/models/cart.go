package models

// CartLine is one book/quantity pair of the cart snapshot, with the book's
// fields merged in.
type CartLine struct {
	Book
	Quantity int
}

// BookID is the identity used for cart mutations.
func (l CartLine) BookID() string { return l.ID }

// Total is the display-only line price.
func (l CartLine) Total() float64 { return l.Price * float64(l.Quantity) }

// CartItemPayload is one element of the server's cart "items" array.
type CartItemPayload struct {
	Book     *BookPayload `json:"book"`
	Quantity int          `json:"quantity"`
}

// CartPayload is the body of GET /cart.
type CartPayload struct {
	Items []CartItemPayload `json:"items"`
}

// NormalizeCartLine flattens one server item. Items without a book identity
// or with quantity below one are not represented.
func NormalizeCartLine(p CartItemPayload) (CartLine, bool) {
	if p.Book == nil || p.Quantity < 1 {
		return CartLine{}, false
	}
	b, ok := NormalizeBook(*p.Book)
	if !ok {
		return CartLine{}, false
	}
	return CartLine{Book: b, Quantity: p.Quantity}, true
}

// NormalizeCart maps the server snapshot into ordered cart lines.
func NormalizeCart(p CartPayload) []CartLine {
	lines := make([]CartLine, 0, len(p.Items))
	for _, item := range p.Items {
		if l, ok := NormalizeCartLine(item); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// CartSummary is computed from a snapshot for display. It is never sent
// back to the server.
type CartSummary struct {
	Lines    int
	Items    int
	Subtotal float64
}

func Summarize(lines []CartLine) CartSummary {
	s := CartSummary{Lines: len(lines)}
	for _, l := range lines {
		s.Items += l.Quantity
		s.Subtotal += l.Total()
	}
	return s
}

// CartMutation is the body of POST /cart/add and PUT /cart/update.
type CartMutation struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}
