package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solemate-service/internal/models"
	"solemate-service/internal/repository"
	"solemate-service/internal/services"
)

// CartSessionCookie identifies the shopper's cart slot
const CartSessionCookie = "cart_session"

const cartCookieMaxAge = 30 * 24 * 60 * 60

type CartHandler struct {
	cart *services.CartService
}

func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// cartID returns the cart session id from the cookie, minting one when
// absent so the first mutation already has a stable slot
func (h *CartHandler) cartID(c *gin.Context) string {
	id, err := c.Cookie(CartSessionCookie)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(CartSessionCookie, id, cartCookieMaxAge, "/", "", false, true)
	}
	return id
}

// GetCart returns the hydrated cart with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cart.Get(c.Request.Context(), h.cartID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddItem adds a product to the cart, clamping to the live stock ceiling
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	view, err := h.cart.Add(c.Request.Context(), h.cartID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateItem sets a line quantity; zero or negative removes the line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	view, err := h.cart.UpdateQuantity(c.Request.Context(), h.cartID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveItem deletes the line for the product id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cart.Remove(c.Request.Context(), h.cartID(c), c.Param("productId"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClearCart empties the cart and erases the persisted slot
func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.cart.Clear(c.Request.Context(), h.cartID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
