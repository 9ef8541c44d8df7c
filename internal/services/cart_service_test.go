package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solemate-service/internal/models"
	"solemate-service/internal/repository"
)

// MockCartStorage is a mock implementation of CartStorage
type MockCartStorage struct {
	mock.Mock
}

var _ CartStorage = (*MockCartStorage)(nil)

func (m *MockCartStorage) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartStorage) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	args := m.Called(ctx, cartID, items)
	return args.Error(0)
}

func (m *MockCartStorage) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// memoryCartStorage is an in-memory stand-in for the redis slot, used where
// tests need real load/save round trips
type memoryCartStorage struct {
	slots map[string][]byte
}

func newMemoryCartStorage() *memoryCartStorage {
	return &memoryCartStorage{slots: map[string][]byte{}}
}

func (s *memoryCartStorage) Load(_ context.Context, cartID string) ([]models.CartItem, error) {
	data, ok := s.slots[cartID]
	if !ok {
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// malformed persisted state is treated as absent
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *memoryCartStorage) Save(_ context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.slots[cartID] = data
	return nil
}

func (s *memoryCartStorage) Delete(_ context.Context, cartID string) error {
	delete(s.slots, cartID)
	return nil
}

func testProduct(id string, price float64, stock int) models.Product {
	return models.Product{ID: id, Name: "Shoe " + id, Price: price, Stock: stock}
}

func newTestCartService(storage CartStorage, products ...models.Product) *CartService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewCartService(storage, repository.NewCatalogRepository(products), logger)
}

func hasNotice(notices []models.CartNotice, code models.NoticeCode) bool {
	for _, n := range notices {
		if n.Code == code {
			return true
		}
	}
	return false
}

func TestAddClampsToStockCeiling(t *testing.T) {
	// stock 50, add 60 -> quantity 50 plus a stock notice
	svc := newTestCartService(newMemoryCartStorage(), testProduct("1", 120.00, 50))

	view, err := svc.Add(context.Background(), "cart-1", "1", 60)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 50, view.Items[0].Quantity)
	assert.True(t, hasNotice(view.Notices, models.NoticeStockLimit))
	assert.True(t, hasNotice(view.Notices, models.NoticeItemAdded))
}

func TestAddWithinStockEmitsNoStockNotice(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage(), testProduct("1", 120.00, 50))

	view, err := svc.Add(context.Background(), "cart-1", "1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.False(t, hasNotice(view.Notices, models.NoticeStockLimit))
	assert.True(t, hasNotice(view.Notices, models.NoticeItemAdded))
}

func TestAddTopsUpExistingLine(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage(), testProduct("1", 120.00, 5))
	ctx := context.Background()

	_, err := svc.Add(ctx, "cart-1", "1", 2)
	require.NoError(t, err)

	// 2 + 2 stays under the ceiling
	view, err := svc.Add(ctx, "cart-1", "1", 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.False(t, hasNotice(view.Notices, models.NoticeStockLimit))

	// 4 + 3 crosses it: clamp to 5, notify
	view, err = svc.Add(ctx, "cart-1", "1", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.True(t, hasNotice(view.Notices, models.NoticeStockLimit))
}

func TestAddZeroStockDoesNotInsert(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage(), testProduct("1", 120.00, 0))

	view, err := svc.Add(context.Background(), "cart-1", "1", 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, hasNotice(view.Notices, models.NoticeStockLimit))
	// nothing was inserted, so nothing claims to have been added
	assert.False(t, hasNotice(view.Notices, models.NoticeItemAdded))
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage())

	_, err := svc.Add(context.Background(), "cart-1", "missing", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage(), testProduct("1", 120.00, 50))

	view, err := svc.Add(context.Background(), "cart-1", "1", 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestUpdateQuantityClampsAndRemoves(t *testing.T) {
	svc := newTestCartService(newMemoryCartStorage(), testProduct("2", 180.00, 3))
	ctx := context.Background()

	_, err := svc.Add(ctx, "cart-1", "2", 1)
	require.NoError(t, err)

	// above stock: clamp, notify
	view, err := svc.UpdateQuantity(ctx, "cart-1", "2", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.True(t, hasNotice(view.Notices, models.NoticeStockLimit))

	// exact set within stock
	view, err = svc.UpdateQuantity(ctx, "cart-1", "2", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.False(t, hasNotice(view.Notices, models.NoticeStockLimit))

	// zero removes the line and emits the removal notice
	view, err = svc.UpdateQuantity(ctx, "cart-1", "2", 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, hasNotice(view.Notices, models.NoticeItemRemoved))
}

func TestRemoveAndTotals(t *testing.T) {
	// {id 2, qty 3, price 180} -> total 540, then empty
	svc := newTestCartService(newMemoryCartStorage(), testProduct("2", 180.00, 10))
	ctx := context.Background()

	view, err := svc.Add(ctx, "cart-1", "2", 3)
	require.NoError(t, err)
	assert.Equal(t, 540.00, view.Total)
	assert.Equal(t, 3, view.ItemCount)

	// totals are derived, not stored: reading twice gives the same view
	again, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, view.Total, again.Total)
	assert.Equal(t, view.ItemCount, again.ItemCount)

	view, err = svc.Remove(ctx, "cart-1", "2")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
	assert.True(t, hasNotice(view.Notices, models.NoticeItemRemoved))
}

func TestClearErasesSlot(t *testing.T) {
	storage := newMemoryCartStorage()
	svc := newTestCartService(storage, testProduct("1", 120.00, 50))
	ctx := context.Background()

	_, err := svc.Add(ctx, "cart-1", "1", 1)
	require.NoError(t, err)
	require.Contains(t, storage.slots, "cart-1")

	view, err := svc.Clear(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, hasNotice(view.Notices, models.NoticeCartCleared))
	assert.NotContains(t, storage.slots, "cart-1")
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	storage := newMemoryCartStorage()
	catalog := []models.Product{testProduct("1", 120.00, 50), testProduct("2", 180.00, 30)}
	ctx := context.Background()

	svc := newTestCartService(storage, catalog...)
	_, err := svc.Add(ctx, "cart-1", "1", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "cart-1", "2", 1)
	require.NoError(t, err)

	// a fresh service over the same storage sees the same line items
	reloaded := newTestCartService(storage, catalog...)
	view, err := reloaded.Get(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "1", view.Items[0].ID)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "2", view.Items[1].ID)
	assert.Equal(t, 1, view.Items[1].Quantity)
	assert.Equal(t, 420.00, view.Total)
}

func TestSnapshotPriceSurvivesCatalogChange(t *testing.T) {
	storage := newMemoryCartStorage()
	repo := repository.NewCatalogRepository([]models.Product{testProduct("1", 120.00, 50)})
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := NewCartService(storage, repo, logger)
	ctx := context.Background()

	_, err := svc.Add(ctx, "cart-1", "1", 1)
	require.NoError(t, err)

	// price change after adding does not alter the snapshot...
	newPrice := 999.0
	newStock := 2
	_, err = repo.Update("1", models.UpdateProductRequest{Price: &newPrice, Stock: &newStock})
	require.NoError(t, err)

	view, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 120.00, view.Items[0].Price)

	// ...but stock ceiling re-checks use the live value
	view, err = svc.UpdateQuantity(ctx, "cart-1", "1", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.True(t, hasNotice(view.Notices, models.NoticeStockLimit))
}

func TestMutationsPersistAfterEveryChange(t *testing.T) {
	storage := new(MockCartStorage)
	svc := newTestCartService(storage, testProduct("1", 120.00, 50))
	ctx := context.Background()

	storage.On("Load", mock.Anything, "cart-1").Return([]models.CartItem{}, nil)
	storage.On("Save", mock.Anything, "cart-1", mock.MatchedBy(func(items []models.CartItem) bool {
		return len(items) == 1 && items[0].Quantity == 2
	})).Return(nil)

	_, err := svc.Add(ctx, "cart-1", "1", 2)
	require.NoError(t, err)

	storage.AssertExpectations(t)
}

func TestStorageFailureSurfacesToCaller(t *testing.T) {
	storage := new(MockCartStorage)
	svc := newTestCartService(storage, testProduct("1", 120.00, 50))

	storage.On("Load", mock.Anything, "cart-1").Return(nil, assert.AnError)

	_, err := svc.Get(context.Background(), "cart-1")
	assert.Error(t, err)
}
