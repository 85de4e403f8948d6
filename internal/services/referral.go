package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

const (
	// referralBaseFallback seeds the code when the customer name normalizes
	// to nothing usable.
	referralBaseFallback = "MYHI"

	// referralSuffixAlphabet excludes characters that read ambiguously on a
	// printed voucher (0/O, 1/I). Its length of 32 divides 256 evenly, so
	// indexing by byte modulo the length stays uniform.
	referralSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// referralMaxAttempts bounds code regeneration on collision. Past the
	// bound the last candidate is accepted; with a 32^4 suffix space the
	// residual collision probability is negligible, not formally excluded.
	referralMaxAttempts = 50

	// rewardHistoryLimit caps the reward history at the most recent entries.
	rewardHistoryLimit = 20

	referralProfileNote   = "Chia sẻ mã này cho bạn bè để nhận ưu đãi."
	referralPendingNote   = "Đơn đang chờ hoàn tất để tặng voucher"
	referralCompletedNote = "Đã cấp voucher 10% cho cả hai bên"
)

// ReferralService owns referral codes and their reward lifecycle. Codes are
// unique across the whole registry, not per customer.
type ReferralService struct {
	storage storage.KeyValueStore
	now     func() time.Time
}

func NewReferralService(store storage.KeyValueStore) *ReferralService {
	return &ReferralService{storage: store, now: time.Now}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// normalizeBase reduces a seed name to at most 4 uppercase alphanumerics.
func normalizeBase(seed string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(seed) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 4 {
				break
			}
		}
	}
	return b.String()
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is not recoverable in any useful way here.
		panic(err)
	}

	out := make([]byte, 4)
	for i, b := range buf {
		out[i] = referralSuffixAlphabet[int(b)%len(referralSuffixAlphabet)]
	}
	return string(out)
}

func generateReferralCode(seed string, existing map[string]struct{}) string {
	base := utils.FirstNonEmpty(normalizeBase(seed), referralBaseFallback)

	candidate := fmt.Sprintf("%s-%s", base, randomSuffix())
	for attempt := 0; attempt < referralMaxAttempts; attempt++ {
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%s", base, randomSuffix())
	}

	logger.Log.Warn("accepting referral code after exhausting collision retries",
		zap.String("code", candidate),
	)
	return candidate
}

func (r *ReferralService) loadProfile(ctx context.Context, customerID string) (*models.ReferralProfile, error) {
	raw, err := r.storage.Get(ctx, storage.NamespaceReferrals, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read referral profile: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var profile models.ReferralProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// A corrupt profile is treated as missing; a fresh one will be
		// generated on the next get-or-create.
		logger.Log.Warn("discarding corrupt referral profile",
			zap.String("customerID", customerID),
			zap.Error(err),
		)
		return nil, nil
	}
	return &profile, nil
}

func (r *ReferralService) saveProfile(ctx context.Context, customerID string, profile *models.ReferralProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal referral profile: %w", err)
	}
	if err := r.storage.Set(ctx, storage.NamespaceReferrals, customerID, raw); err != nil {
		return fmt.Errorf("failed to persist referral profile: %w", err)
	}
	return nil
}

// allProfiles decodes the whole registry, skipping corrupt records.
func (r *ReferralService) allProfiles(ctx context.Context) (map[string]*models.ReferralProfile, error) {
	records, err := r.storage.List(ctx, storage.NamespaceReferrals)
	if err != nil {
		return nil, fmt.Errorf("failed to list referral profiles: %w", err)
	}

	profiles := make(map[string]*models.ReferralProfile, len(records))
	for customerID, raw := range records {
		var profile models.ReferralProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			logger.Log.Warn("skipping corrupt referral profile",
				zap.String("customerID", customerID),
				zap.Error(err),
			)
			continue
		}
		profiles[customerID] = &profile
	}
	return profiles, nil
}

// GetOrCreateProfile returns the existing profile unchanged, or creates one
// with a freshly generated code checked against every code in the registry.
func (r *ReferralService) GetOrCreateProfile(ctx context.Context, customerID, seedName string) (*models.ReferralProfile, error) {
	if customerID == "" {
		return nil, nil
	}

	existing, err := r.loadProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	profiles, err := r.allProfiles(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(profiles))
	for _, profile := range profiles {
		taken[normalizeCode(profile.Code)] = struct{}{}
	}

	seed := utils.FirstNonEmpty(seedName, customerID)
	profile := &models.ReferralProfile{
		Code:          generateReferralCode(seed, taken),
		CreatedAt:     utils.NewRFC3339Date(r.now()),
		RewardHistory: []models.ReferralReward{},
		Note:          referralProfileNote,
	}

	if err := r.saveProfile(ctx, customerID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// findByCode returns the owning customer ID and profile, or ("", nil) when
// the code is unknown.
func (r *ReferralService) findByCode(ctx context.Context, code string) (string, *models.ReferralProfile, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return "", nil, nil
	}

	profiles, err := r.allProfiles(ctx)
	if err != nil {
		return "", nil, err
	}

	for customerID, profile := range profiles {
		if normalizeCode(profile.Code) == normalized {
			return customerID, profile, nil
		}
	}
	return "", nil, nil
}

// RecordOrderCreated attaches a pending reward entry for the order to the
// profile owning the code. An unknown code is silently ignored and reported
// as (nil, nil): a mistyped code on an order must never fail the checkout.
func (r *ReferralService) RecordOrderCreated(ctx context.Context, code, orderID, referredName string) (*models.ReferralMatch, error) {
	if code == "" || orderID == "" {
		return nil, nil
	}

	customerID, profile, err := r.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	entry := models.ReferralReward{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		ReferredName: referredName,
		Status:       models.ReferralPending,
		Note:         referralPendingNote,
		CreatedAt:    utils.NewRFC3339Date(r.now()),
	}

	history := append([]models.ReferralReward{entry}, profile.RewardHistory...)
	if len(history) > rewardHistoryLimit {
		history = history[:rewardHistoryLimit]
	}

	profile.RewardHistory = history
	profile.TotalReferrals++
	updated := utils.NewRFC3339Date(r.now())
	profile.LastUpdated = &updated

	if err := r.saveProfile(ctx, customerID, profile); err != nil {
		return nil, err
	}

	return &models.ReferralMatch{ReferrerID: customerID, Code: profile.Code}, nil
}

// RecordOrderCompleted transitions the order's reward entry to success and
// increments the success counter. The transition is guarded on the entry
// still being pending, so a repeated invocation for the same order is a
// no-op and the success counter can never outrun the total.
func (r *ReferralService) RecordOrderCompleted(ctx context.Context, code, orderID string) (*models.ReferralProfile, error) {
	if code == "" || orderID == "" {
		return nil, nil
	}

	customerID, profile, err := r.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	transitioned := false
	for i := range profile.RewardHistory {
		entry := &profile.RewardHistory[i]
		if entry.OrderID != orderID || entry.Status != models.ReferralPending {
			continue
		}

		completedAt := utils.NewRFC3339Date(r.now())
		entry.Status = models.ReferralSuccess
		entry.Note = referralCompletedNote
		entry.CompletedAt = &completedAt
		transitioned = true
		break
	}

	if !transitioned {
		return profile, nil
	}

	profile.SuccessfulReferrals++
	updated := utils.NewRFC3339Date(r.now())
	profile.LastUpdated = &updated

	if err := r.saveProfile(ctx, customerID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
