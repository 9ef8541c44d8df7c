package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solemate-service/internal/models"
	"solemate-service/internal/services"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	cart     *services.CartService
}

func NewCheckoutHandler(checkout *services.CheckoutService, cart *services.CartService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, cart: cart}
}

// CreateSession hands the cart off to the payment gateway and returns the
// session handle the client redirects to. The cart is left untouched; it is
// cleared by Confirm once payment completed.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	cartID, err := c.Cookie(CartSessionCookie)
	if err != nil || cartID == "" {
		emptyCartError(c)
		return
	}

	// Body is optional; URL overrides only
	var req models.CheckoutSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err.Error())
			return
		}
	}

	session, err := h.checkout.CreateSession(c.Request.Context(), cartID, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			emptyCartError(c)
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EXTERNAL_SERVICE_ERROR",
				Message: "Failed to create checkout session",
			},
		})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm clears the cart after the payment page reported success
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	cartID, err := c.Cookie(CartSessionCookie)
	if err != nil || cartID == "" {
		c.JSON(http.StatusOK, models.CartView{Items: []models.CartItem{}})
		return
	}

	view, err := h.cart.Clear(c.Request.Context(), cartID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func emptyCartError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "EMPTY_CART",
			Message: "Cart is empty",
		},
	})
}
