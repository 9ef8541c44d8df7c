package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"solemate-service/internal/models"
)

// ErrEmptyCart is returned when checkout is attempted with no payable lines
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService hands the cart off to Stripe Checkout. The session is a
// fire-and-forget round trip: it either completes or surfaces an error, no
// automatic retry.
type CheckoutService struct {
	storage    CartStorage
	secretKey  string
	successURL string
	cancelURL  string
	logger     *logrus.Entry
}

func NewCheckoutService(storage CartStorage, secretKey, baseURL string, logger *logrus.Logger) *CheckoutService {
	return &CheckoutService{
		storage:    storage,
		secretKey:  secretKey,
		successURL: baseURL + "/order-confirmation",
		cancelURL:  baseURL + "/cart",
		logger:     logger.WithField("component", "checkout-service"),
	}
}

// CreateSession builds a Stripe Checkout Session from the current cart.
// Only lines with price > 0 and quantity > 0 are forwarded.
func (s *CheckoutService) CreateSession(ctx context.Context, cartID string, req models.CheckoutSessionRequest) (models.CheckoutSessionResponse, error) {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return models.CheckoutSessionResponse{}, err
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	for _, item := range items {
		if item.Price <= 0 || item.Quantity <= 0 {
			continue
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	if len(lineItems) == 0 {
		return models.CheckoutSessionResponse{}, ErrEmptyCart
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.successURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.cancelURL
	}

	stripe.Key = s.secretKey
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
		Metadata:           map[string]string{"cart_id": cartID},
	}

	sess, err := session.New(params)
	if err != nil {
		s.logger.WithField("cartId", cartID).WithError(err).Error("Failed to create checkout session")
		return models.CheckoutSessionResponse{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"cartId":    cartID,
		"sessionId": sess.ID,
		"lines":     len(lineItems),
	}).Info("Checkout session created")

	return models.CheckoutSessionResponse{SessionID: sess.ID, URL: sess.URL}, nil
}
