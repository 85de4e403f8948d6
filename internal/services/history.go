package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

const (
	defaultTailoringName = "Sản phẩm may đo"
	defaultFabricName    = "Đơn mua vải"
	fabricCategory       = "Vải"
	unknownCategory      = "—"
)

// HistoryService classifies raw order records per customer and projects them
// into display-ready product cards.
type HistoryService struct {
	storage storage.KeyValueStore
	now     func() time.Time
}

func NewHistoryService(store storage.KeyValueStore) *HistoryService {
	return &HistoryService{storage: store, now: time.Now}
}

// matchesIdentity applies the OR rule: an order belongs to the customer when
// any of phone, name, customer ID or email matches a non-empty identity
// field. Two customers sharing a name can therefore see each other's orders;
// accepted as the price of matching orders placed before registration.
func matchesIdentity(order models.Order, identity models.CustomerIdentity) bool {
	if identity.Phone != "" && order.Phone == identity.Phone {
		return true
	}
	if identity.Name != "" && order.Name == identity.Name {
		return true
	}
	if identity.CustomerID != "" && order.CustomerID == identity.CustomerID {
		return true
	}
	if identity.Email != "" && order.Email == identity.Email {
		return true
	}
	return false
}

// CustomerOrders scans all stored orders and keeps the ones owned by the
// identity, sorted by creation time ascending. Corrupt records are skipped.
func (h *HistoryService) CustomerOrders(ctx context.Context, identity models.CustomerIdentity) ([]models.Order, error) {
	records, err := h.storage.List(ctx, storage.NamespaceOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := []models.Order{}
	for key, raw := range records {
		var order models.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			logger.Log.Warn("skipping corrupt order record",
				zap.String("key", key),
				zap.Error(err),
			)
			continue
		}

		if matchesIdentity(order, identity) {
			result = append(result, order)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Time.Before(result[j].CreatedAt.Time)
	})

	return result, nil
}

// cardEligible reports whether the order shows up as a purchased product.
// A made-to-order garment counts only once delivered; a fabric order is
// payment-complete at creation and always counts.
func cardEligible(order models.Order) bool {
	if order.IsFabricOrder {
		return true
	}
	return order.Status == models.StatusDone
}

// ProductCards projects eligible orders into cards, newest first. Every
// optional field resolves through an ordered fallback cascade.
func (h *HistoryService) ProductCards(orders []models.Order) []models.ProductCard {
	cards := []models.ProductCard{}

	for _, order := range orders {
		if !cardEligible(order) {
			continue
		}

		defaultName := defaultTailoringName
		category := utils.FirstNonEmpty(order.ProductType, order.Style, unknownCategory)
		if order.IsFabricOrder {
			defaultName = defaultFabricName
			category = utils.FirstNonEmpty(order.ProductType, order.Style, fabricCategory)
		}

		image := ""
		if len(order.SampleImages) > 0 {
			image = utils.FirstNonEmpty(order.SampleImages[0])
		}
		if image == "" && order.IsFabricOrder && len(order.Items) > 0 {
			image = utils.FirstNonEmpty(order.Items[0].Image)
		}

		date := order.CreatedAt
		if order.Receive != nil && !order.Receive.Time.IsZero() {
			date = *order.Receive
		} else if order.CreatedAt.Time.IsZero() {
			date = utils.NewRFC3339Date(h.now())
		}

		id := order.ID
		if id == "" {
			id = fmt.Sprintf("order-%d", h.now().UnixMilli())
		}

		status := order.Status
		if order.IsFabricOrder {
			status = models.StatusDone
		}

		cards = append(cards, models.ProductCard{
			ID:            id,
			Name:          utils.FirstNonEmpty(order.StyleName, order.Style, order.ProductName, defaultName),
			Date:          date,
			Price:         utils.FirstNonEmpty(order.Total, order.Budget, "0"),
			Measurements:  order.Measurements,
			Status:        status,
			Category:      category,
			Image:         image,
			IsFabricOrder: order.IsFabricOrder,
		})
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[j].Date.Time.Before(cards[i].Date.Time)
	})

	return cards
}
