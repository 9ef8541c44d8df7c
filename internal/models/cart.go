package models

// CartItem is one cart line: a snapshot of the product at add-time plus the
// requested quantity. Price and name changes after adding do not alter the
// snapshot; only stock ceiling checks read the live catalog.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// NoticeCode identifies the kind of cart notice emitted by a mutation
type NoticeCode string

const (
	NoticeItemAdded   NoticeCode = "ITEM_ADDED"
	NoticeItemRemoved NoticeCode = "ITEM_REMOVED"
	NoticeCartCleared NoticeCode = "CART_CLEARED"
	NoticeStockLimit  NoticeCode = "STOCK_LIMIT"
)

// CartNotice is a user-facing notification produced by a cart mutation.
// Stock-limit notices describe a clamped, non-fatal condition.
type CartNotice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
}

// CartView is the response shape for every cart endpoint
type CartView struct {
	Items     []CartItem   `json:"items"`
	Total     float64      `json:"total"`
	ItemCount int          `json:"itemCount"`
	Notices   []CartNotice `json:"notices,omitempty"`
}

// AddCartItemRequest adds a product to the cart. Quantity defaults to 1.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets a line quantity. Zero or negative removes the
// line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutSessionRequest optionally overrides the redirect URLs
type CheckoutSessionRequest struct {
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

// CheckoutSessionResponse carries the gateway session handle the client
// redirects to
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// StyleMatchRequest carries the outfit photo as a data URI
type StyleMatchRequest struct {
	PhotoDataURI string `json:"photoDataUri" binding:"required"`
}

// StyleMatchResponse is the recommendation plus the closest catalog matches
type StyleMatchResponse struct {
	ShoeDescription string    `json:"shoeDescription"`
	MatchReason     string    `json:"matchReason"`
	Matches         []Product `json:"matches"`
}
