package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"solemate-service/internal/models"
)

// CartStorage is the durable slot a cart is persisted to after every
// mutation
type CartStorage interface {
	Load(ctx context.Context, cartID string) ([]models.CartItem, error)
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	Delete(ctx context.Context, cartID string) error
}

// ProductSource supplies the live product record for stock ceiling checks
type ProductSource interface {
	GetByID(id string) (models.Product, error)
}

// CartService implements the cart state machine: a line item is either
// absent or present with quantity >= 1. Quantities are clamped to the live
// stock at mutation time; the snapshot fields are frozen at add time.
type CartService struct {
	storage CartStorage
	catalog ProductSource
	logger  *logrus.Entry
}

func NewCartService(storage CartStorage, catalog ProductSource, logger *logrus.Logger) *CartService {
	return &CartService{
		storage: storage,
		catalog: catalog,
		logger:  logger.WithField("component", "cart-service"),
	}
}

// Get returns the current cart view without mutating anything
func (s *CartService) Get(ctx context.Context, cartID string) (models.CartView, error) {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	return cartView(items, nil), nil
}

// Add inserts or tops up a line item, clamping the resulting quantity to the
// product's current stock. A brand-new add whose clamped quantity would be 0
// is not inserted; the stock-limit notice still tells the caller why.
func (s *CartService) Add(ctx context.Context, cartID, productID string, quantity int) (models.CartView, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.catalog.GetByID(productID)
	if err != nil {
		return models.CartView{}, err
	}

	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}

	var notices []models.CartNotice
	added := false
	idx := indexOfItem(items, productID)
	if idx >= 0 {
		target := items[idx].Quantity + quantity
		if target > product.Stock {
			remaining := product.Stock - items[idx].Quantity
			if remaining < 0 {
				remaining = 0
			}
			notices = append(notices, stockLimitNotice(
				fmt.Sprintf("Cannot add more %s. Only %d left.", product.Name, remaining)))
			target = product.Stock
		}
		items[idx].Quantity = target
		added = true
	} else {
		if quantity > product.Stock {
			notices = append(notices, stockLimitNotice(
				fmt.Sprintf("Cannot add %d of %s. Only %d available.", quantity, product.Name, product.Stock)))
			quantity = product.Stock
		}
		if quantity > 0 {
			items = append(items, models.CartItem{Product: product, Quantity: quantity})
			added = true
		}
	}
	items = dropEmpty(items)

	if added {
		notices = append(notices, models.CartNotice{
			Code:    models.NoticeItemAdded,
			Message: fmt.Sprintf("%s has been added to your cart.", product.Name),
		})
	}

	if err := s.storage.Save(ctx, cartID, items); err != nil {
		return models.CartView{}, err
	}
	return cartView(items, notices), nil
}

// UpdateQuantity sets a line quantity exactly, clamping to the live stock.
// Zero or negative delegates to Remove.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (models.CartView, error) {
	if quantity <= 0 {
		return s.Remove(ctx, cartID, productID)
	}

	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}

	idx := indexOfItem(items, productID)
	if idx < 0 {
		return cartView(items, nil), nil
	}

	// Stock ceiling re-checks use the live catalog value, falling back to
	// the snapshot when the product no longer exists.
	stock := items[idx].Stock
	if product, err := s.catalog.GetByID(productID); err == nil {
		stock = product.Stock
	}

	var notices []models.CartNotice
	if quantity > stock {
		notices = append(notices, stockLimitNotice(
			fmt.Sprintf("Only %d units of %s available.", stock, items[idx].Name)))
		quantity = stock
	}
	items[idx].Quantity = quantity
	items = dropEmpty(items)

	if err := s.storage.Save(ctx, cartID, items); err != nil {
		return models.CartView{}, err
	}
	return cartView(items, notices), nil
}

// Remove deletes the line item for the product id
func (s *CartService) Remove(ctx context.Context, cartID, productID string) (models.CartView, error) {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}

	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	var notices []models.CartNotice
	if removed {
		notices = append(notices, models.CartNotice{
			Code:    models.NoticeItemRemoved,
			Message: "Item has been removed from your cart.",
		})
	}

	if err := s.storage.Save(ctx, cartID, kept); err != nil {
		return models.CartView{}, err
	}
	return cartView(kept, notices), nil
}

// Clear empties the cart and erases the persisted slot
func (s *CartService) Clear(ctx context.Context, cartID string) (models.CartView, error) {
	if err := s.storage.Delete(ctx, cartID); err != nil {
		return models.CartView{}, err
	}
	notices := []models.CartNotice{{
		Code:    models.NoticeCartCleared,
		Message: "Your shopping cart has been emptied.",
	}}
	return cartView([]models.CartItem{}, notices), nil
}

// Total is the sum of price * quantity over all line items
func Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all line items
func ItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func cartView(items []models.CartItem, notices []models.CartNotice) models.CartView {
	if items == nil {
		items = []models.CartItem{}
	}
	return models.CartView{
		Items:     items,
		Total:     Total(items),
		ItemCount: ItemCount(items),
		Notices:   notices,
	}
}

func stockLimitNotice(message string) models.CartNotice {
	return models.CartNotice{Code: models.NoticeStockLimit, Message: message}
}

func indexOfItem(items []models.CartItem, productID string) int {
	for i, item := range items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// dropEmpty filters out any line whose quantity fell to zero or below,
// keeping the present(quantity>=1) invariant after every mutation pass
func dropEmpty(items []models.CartItem) []models.CartItem {
	kept := items[:0]
	for _, item := range items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	return kept
}
