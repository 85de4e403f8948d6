package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

var (
	ErrOrderNotFound      = errors.New("order does not exist")
	ErrDuplicateOrder     = errors.New("order already exists")
	ErrInvalidOrderStatus = errors.New("unknown order status")
)

type referralRecorder interface {
	RecordOrderCreated(ctx context.Context, code, orderID, referredName string) (*models.ReferralMatch, error)
	RecordOrderCompleted(ctx context.Context, code, orderID string) (*models.ReferralProfile, error)
}

type loyaltyRefresher interface {
	Refresh(ctx context.Context, identity models.CustomerIdentity) (models.LoyaltyProfile, error)
}

type measurementAppender interface {
	Append(ctx context.Context, customerID string, values map[string]string, orderID string) (*models.Measurement, error)
}

type jobEnqueuer interface {
	Enqueue(job Job) error
}

// OrderService owns the order lifecycle. Creation and status changes fan out
// to the referral registry, the measurement history and the loyalty snapshot;
// the loyalty recomputation runs on the job queue off the request path.
type OrderService struct {
	storage      storage.KeyValueStore
	referrals    referralRecorder
	loyalty      loyaltyRefresher
	measurements measurementAppender
	jobs         jobEnqueuer
	now          func() time.Time
}

func NewOrderService(
	store storage.KeyValueStore,
	referrals referralRecorder,
	loyalty loyaltyRefresher,
	measurements measurementAppender,
	jobs jobEnqueuer,
) *OrderService {
	return &OrderService{
		storage:      store,
		referrals:    referrals,
		loyalty:      loyalty,
		measurements: measurements,
		jobs:         jobs,
		now:          time.Now,
	}
}

func (o *OrderService) loadOrder(ctx context.Context, orderID string) (*models.Order, error) {
	raw, err := o.storage.Get(ctx, storage.NamespaceOrders, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to read order: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var order models.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", orderID, err)
	}
	return &order, nil
}

func (o *OrderService) saveOrder(ctx context.Context, order *models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := o.storage.Set(ctx, storage.NamespaceOrders, order.ID, raw); err != nil {
		return fmt.Errorf("failed to persist order: %w", err)
	}
	return nil
}

// nextOrderID produces a sequential O-<n> identifier. Counting the stored
// orders is enough here because IDs are only generated under a single writer;
// the loop skips over any externally supplied IDs that already took a slot.
func (o *OrderService) nextOrderID(taken map[string][]byte) string {
	n := len(taken) + 1
	for {
		candidate := fmt.Sprintf("O-%d", n)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
		n++
	}
}

// CreateOrder stores a new order for the identity. An order arriving without
// an ID gets a generated one; an order with an ID that already exists is
// rejected with ErrDuplicateOrder. A referral code on the order registers a
// pending reward; measurements on the order extend the customer's history.
func (o *OrderService) CreateOrder(ctx context.Context, order models.Order, identity models.CustomerIdentity) (*models.Order, error) {
	records, err := o.storage.List(ctx, storage.NamespaceOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if order.ID == "" {
		order.ID = o.nextOrderID(records)
	} else if _, exists := records[order.ID]; exists {
		return nil, ErrDuplicateOrder
	}

	order.CustomerID = utils.FirstNonEmpty(order.CustomerID, identity.CustomerID)
	order.Phone = utils.FirstNonEmpty(order.Phone, identity.Phone)
	order.Name = utils.FirstNonEmpty(order.Name, identity.Name)
	order.Email = utils.FirstNonEmpty(order.Email, identity.Email)

	if order.Status == "" {
		order.Status = models.StatusNew
	}
	if !order.Status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	if order.CreatedAt.Time.IsZero() {
		order.CreatedAt = utils.NewRFC3339Date(o.now())
	}

	if err := o.saveOrder(ctx, &order); err != nil {
		return nil, err
	}

	if len(order.Measurements) > 0 && order.CustomerID != "" {
		if _, err := o.measurements.Append(ctx, order.CustomerID, order.Measurements, order.ID); err != nil {
			logger.Log.Warn("failed to record measurements from order",
				zap.String("orderID", order.ID),
				zap.Error(err),
			)
		}
	}

	if order.ReferralCode != "" {
		match, err := o.referrals.RecordOrderCreated(ctx, order.ReferralCode, order.ID, order.Name)
		if err != nil {
			return nil, err
		}
		if match == nil {
			logger.Log.Info("order carries unknown referral code",
				zap.String("orderID", order.ID),
				zap.String("code", order.ReferralCode),
			)
		}
	}

	logger.Log.Info("created order",
		zap.String("orderID", order.ID),
		zap.String("customerID", order.CustomerID),
		zap.Bool("fabric", order.IsFabricOrder),
	)
	return &order, nil
}

// UpdateStatus moves the order to the given status. The referral reward and
// the loyalty refresh fire only on the transition into DONE, not on repeated
// DONE updates.
func (o *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := o.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	completed := order.Status != models.StatusDone && status == models.StatusDone
	order.Status = status

	if err := o.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	if completed {
		if order.ReferralCode != "" {
			if _, err := o.referrals.RecordOrderCompleted(ctx, order.ReferralCode, order.ID); err != nil {
				logger.Log.Error("failed to complete referral reward",
					zap.String("orderID", order.ID),
					zap.Error(err),
				)
			}
		}

		identity := models.CustomerIdentity{
			CustomerID: order.CustomerID,
			Phone:      order.Phone,
			Name:       order.Name,
			Email:      order.Email,
		}
		if err := o.jobs.Enqueue(func(jobCtx context.Context) {
			if _, err := o.loyalty.Refresh(jobCtx, identity); err != nil {
				logger.Log.Error("failed to refresh loyalty after completion",
					zap.String("orderID", orderID),
					zap.Error(err),
				)
			}
		}); err != nil {
			logger.Log.Error("failed to enqueue loyalty refresh",
				zap.String("orderID", orderID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// ApplyReferral attaches a referral code to an existing order and registers
// the pending reward. The returned match is nil when the code is unknown; the
// code still sticks to the order so a later correction of the registry can
// pick it up.
func (o *OrderService) ApplyReferral(ctx context.Context, orderID, code, referredName string) (*models.ReferralMatch, error) {
	order, err := o.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.ReferralCode = code
	if err := o.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	return o.referrals.RecordOrderCreated(ctx, code, orderID, utils.FirstNonEmpty(referredName, order.Name))
}
