package models

import (
	"github.com/myhien-tailor/engagement/internal/utils"
)

type ReferralStatus string

const (
	ReferralPending ReferralStatus = "pending"
	ReferralSuccess ReferralStatus = "success"
)

// ReferralReward is one entry of a profile's reward history, keyed by the
// order that carried the referral code.
type ReferralReward struct {
	ID           string             `json:"id"`
	OrderID      string             `json:"orderId"`
	ReferredName string             `json:"referredName,omitempty"`
	Status       ReferralStatus     `json:"status"`
	Note         string             `json:"note,omitempty"`
	CreatedAt    utils.RFC3339Date  `json:"createdAt"`
	CompletedAt  *utils.RFC3339Date `json:"completedAt,omitempty"`
}

// ReferralProfile holds a customer's referral code and lifecycle counters.
// The code is unique across all profiles; SuccessfulReferrals never exceeds
// TotalReferrals; RewardHistory keeps the 20 most recent entries.
type ReferralProfile struct {
	Code                string             `json:"code"`
	CreatedAt           utils.RFC3339Date  `json:"createdAt"`
	TotalReferrals      int                `json:"totalReferrals"`
	SuccessfulReferrals int                `json:"successfulReferrals"`
	RewardHistory       []ReferralReward   `json:"rewardHistory"`
	Note                string             `json:"note,omitempty"`
	LastUpdated         *utils.RFC3339Date `json:"lastUpdated,omitempty"`
}

// ReferralMatch identifies the owner of a referral code applied to an order.
type ReferralMatch struct {
	ReferrerID string `json:"referrerId"`
	Code       string `json:"code"`
}
