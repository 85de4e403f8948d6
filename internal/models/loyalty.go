package models

import (
	"github.com/shopspring/decimal"

	"github.com/myhien-tailor/engagement/internal/utils"
)

type TierID string

const (
	TierSilver   TierID = "silver"
	TierGold     TierID = "gold"
	TierPlatinum TierID = "platinum"
)

// Tier is one loyalty level. A customer holds the highest tier whose Min is
// not greater than their total spend.
type Tier struct {
	ID       TierID          `json:"id"`
	Name     string          `json:"name"`
	Min      decimal.Decimal `json:"min"`
	Benefits []string        `json:"benefits,omitempty"`
}

// LoyaltyProfile is the derived loyalty snapshot for one customer. It is
// recomputed wholly from the order history on every view and persisted as a
// cache, never mutated incrementally.
type LoyaltyProfile struct {
	Points         int64              `json:"points"`
	TotalSpent     decimal.Decimal    `json:"totalSpent"`
	Tier           TierID             `json:"tier"`
	TierName       string             `json:"tierName"`
	NextTier       *TierID            `json:"nextTier,omitempty"`
	ProgressToNext int                `json:"progressToNext"`
	LastUpdated    *utils.RFC3339Date `json:"lastUpdated,omitempty"`
}
