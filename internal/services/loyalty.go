package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

// pointsPerUnit: one point per 10,000 VND of tracked spend.
var pointsPerUnit = decimal.NewFromInt(10_000)

// loyaltyTiers is ordered by ascending minimum spend. The customer holds the
// highest tier whose minimum does not exceed their total.
var loyaltyTiers = []models.Tier{
	{
		ID:       models.TierSilver,
		Name:     "Silver",
		Min:      decimal.Zero,
		Benefits: []string{"Tích 1 điểm / 10k", "Ưu tiên chỉnh sửa"},
	},
	{
		ID:       models.TierGold,
		Name:     "Gold",
		Min:      decimal.NewFromInt(15_000_000),
		Benefits: []string{"Là hơi & bảo quản", "Ưu tiên lịch cuối tuần"},
	},
	{
		ID:       models.TierPlatinum,
		Name:     "Platinum",
		Min:      decimal.NewFromInt(30_000_000),
		Benefits: []string{"Stylist riêng", "Giảm 10% vải premium"},
	},
}

// parseAmount turns a formatted or plain money string into a decimal. All
// characters except digits, dots and minus signs are stripped first; a value
// that still fails to parse contributes zero.
func parseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

type loyaltyHistory interface {
	CustomerOrders(ctx context.Context, identity models.CustomerIdentity) ([]models.Order, error)
}

// LoyaltyService derives the loyalty snapshot from the order history. There
// is no incremental update path: every view walks the full order list, which
// trades O(n) per view for the absence of staleness bugs.
type LoyaltyService struct {
	storage storage.KeyValueStore
	history loyaltyHistory
	now     func() time.Time
}

func NewLoyaltyService(store storage.KeyValueStore, history loyaltyHistory) *LoyaltyService {
	return &LoyaltyService{storage: store, history: history, now: time.Now}
}

// Compute derives the profile from the given orders. Pure: no storage access.
func (l *LoyaltyService) Compute(orders []models.Order) models.LoyaltyProfile {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(parseAmount(order.Total))
	}

	current := loyaltyTiers[0]
	for _, tier := range loyaltyTiers {
		if total.GreaterThanOrEqual(tier.Min) {
			current = tier
		}
	}

	var next *models.Tier
	for i := range loyaltyTiers {
		if loyaltyTiers[i].Min.GreaterThan(current.Min) {
			next = &loyaltyTiers[i]
			break
		}
	}

	progress := 100
	var nextID *models.TierID
	if next != nil {
		span := next.Min.Sub(current.Min)
		ratio := total.Sub(current.Min).Mul(decimal.NewFromInt(100)).Div(span)
		progress = int(ratio.Round(0).IntPart())
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		nextID = &next.ID
	}

	return models.LoyaltyProfile{
		Points:         total.Div(pointsPerUnit).Floor().IntPart(),
		TotalSpent:     total,
		Tier:           current.ID,
		TierName:       current.Name,
		NextTier:       nextID,
		ProgressToNext: progress,
	}
}

// Persist overwrites the stored snapshot for the customer, stamping it with
// the current time. Overwrite, never merge.
func (l *LoyaltyService) Persist(ctx context.Context, customerID string, profile models.LoyaltyProfile) error {
	updated := utils.NewRFC3339Date(l.now())
	profile.LastUpdated = &updated

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal loyalty snapshot: %w", err)
	}
	if err := l.storage.Set(ctx, storage.NamespaceLoyalty, customerID, raw); err != nil {
		return fmt.Errorf("failed to persist loyalty snapshot: %w", err)
	}
	return nil
}

// Refresh recomputes the snapshot from the customer's classified orders and
// persists it.
func (l *LoyaltyService) Refresh(ctx context.Context, identity models.CustomerIdentity) (models.LoyaltyProfile, error) {
	orders, err := l.history.CustomerOrders(ctx, identity)
	if err != nil {
		return models.LoyaltyProfile{}, fmt.Errorf("failed to load orders for loyalty refresh: %w", err)
	}

	profile := l.Compute(orders)
	if err := l.Persist(ctx, identity.CustomerID, profile); err != nil {
		return models.LoyaltyProfile{}, err
	}

	logger.Log.Info("refreshed loyalty snapshot",
		zap.String("customerID", identity.CustomerID),
		zap.String("tier", string(profile.Tier)),
		zap.Int64("points", profile.Points),
	)
	return profile, nil
}

// Tiers exposes the tier table for presentation.
func Tiers() []models.Tier {
	tiers := make([]models.Tier, len(loyaltyTiers))
	copy(tiers, loyaltyTiers)
	return tiers
}
