package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

func storeOrders(t *testing.T, store storage.KeyValueStore, orders ...models.Order) {
	t.Helper()
	ctx := context.Background()
	for _, order := range orders {
		raw, err := json.Marshal(order)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, storage.NamespaceOrders, order.ID, raw))
	}
}

func TestMatchesIdentity(t *testing.T) {
	order := models.Order{Phone: "0901234567", Name: "Nguyễn Văn A", CustomerID: "customer-1", Email: "a@example.com"}

	testCases := []struct {
		testName string
		identity models.CustomerIdentity
		expected bool
	}{
		{"matches by phone", models.CustomerIdentity{Phone: "0901234567"}, true},
		{"matches by name", models.CustomerIdentity{Name: "Nguyễn Văn A"}, true},
		{"matches by customer id", models.CustomerIdentity{CustomerID: "customer-1"}, true},
		{"matches by email", models.CustomerIdentity{Email: "a@example.com"}, true},
		{"matches when one of several fields hits", models.CustomerIdentity{Phone: "other", Email: "a@example.com"}, true},
		{"no match on different identity", models.CustomerIdentity{Phone: "0909999999", Name: "Trần Thị B"}, false},
		{"empty identity never matches", models.CustomerIdentity{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, matchesIdentity(order, tc.identity))
		})
	}
}

func TestMatchesIdentityIgnoresEmptyOrderFields(t *testing.T) {
	// An order with no name must not match an identity with no name.
	order := models.Order{CustomerID: "customer-1"}
	assert.False(t, matchesIdentity(order, models.CustomerIdentity{Phone: "", Name: "", Email: ""}))
}

func TestCustomerOrdersSortedAscending(t *testing.T) {
	store := storage.NewMemory()
	svc := NewHistoryService(store)

	day := func(d int) utils.RFC3339Date {
		return utils.NewRFC3339Date(time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC))
	}

	storeOrders(t, store,
		models.Order{ID: "O-2", CustomerID: "customer-1", CreatedAt: day(20)},
		models.Order{ID: "O-1", CustomerID: "customer-1", CreatedAt: day(10)},
		models.Order{ID: "O-3", CustomerID: "customer-2", CreatedAt: day(15)},
	)

	orders, err := svc.CustomerOrders(context.Background(), models.CustomerIdentity{CustomerID: "customer-1"})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "O-1", orders[0].ID)
	assert.Equal(t, "O-2", orders[1].ID)
}

func TestCustomerOrdersSkipsCorruptRecords(t *testing.T) {
	store := storage.NewMemory()
	svc := NewHistoryService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.NamespaceOrders, "broken", []byte("{not json")))
	storeOrders(t, store, models.Order{ID: "O-1", CustomerID: "customer-1"})

	orders, err := svc.CustomerOrders(ctx, models.CustomerIdentity{CustomerID: "customer-1"})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestProductCardsEligibility(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	orders := []models.Order{
		{ID: "O-1", Status: models.StatusNew},
		{ID: "O-2", Status: models.StatusInProgress},
		{ID: "O-3", Status: models.StatusDone},
		{ID: "O-4", Status: models.StatusCancelled},
		{ID: "O-5", Status: models.StatusNew, IsFabricOrder: true},
	}

	cards := svc.ProductCards(orders)

	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	assert.ElementsMatch(t, []string{"O-3", "O-5"}, ids)
}

func TestProductCardsFabricCoercedDone(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	cards := svc.ProductCards([]models.Order{
		{ID: "O-1", Status: models.StatusInProgress, IsFabricOrder: true},
	})

	require.Len(t, cards, 1)
	assert.Equal(t, models.StatusDone, cards[0].Status)
	assert.Equal(t, "Đơn mua vải", cards[0].Name)
	assert.Equal(t, "Vải", cards[0].Category)
}

func TestProductCardsFallbacks(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	cards := svc.ProductCards([]models.Order{
		{
			ID:          "O-1",
			Status:      models.StatusDone,
			ProductName: "Áo dài cưới",
			Budget:      "2500000",
		},
	})

	require.Len(t, cards, 1)
	assert.Equal(t, "Áo dài cưới", cards[0].Name)
	assert.Equal(t, "2500000", cards[0].Price)
	assert.Equal(t, "—", cards[0].Category)
}

func TestProductCardsPriceDefaultsToZero(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	cards := svc.ProductCards([]models.Order{{ID: "O-1", Status: models.StatusDone}})

	require.Len(t, cards, 1)
	assert.Equal(t, "0", cards[0].Price)
}

func TestProductCardsSortedNewestFirst(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	day := func(d int) utils.RFC3339Date {
		return utils.NewRFC3339Date(time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC))
	}

	cards := svc.ProductCards([]models.Order{
		{ID: "O-1", Status: models.StatusDone, CreatedAt: day(10)},
		{ID: "O-2", Status: models.StatusDone, CreatedAt: day(20)},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, "O-2", cards[0].ID)
	assert.Equal(t, "O-1", cards[1].ID)
}

func TestProductCardsPreferReceiveDate(t *testing.T) {
	svc := NewHistoryService(storage.NewMemory())

	created := utils.NewRFC3339Date(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	received := utils.NewRFC3339Date(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	cards := svc.ProductCards([]models.Order{
		{ID: "O-1", Status: models.StatusDone, CreatedAt: created, Receive: &received},
	})

	require.Len(t, cards, 1)
	assert.Equal(t, received.Time, cards[0].Date.Time)
}
