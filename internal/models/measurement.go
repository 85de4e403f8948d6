package models

import (
	"strconv"
	"strings"

	"github.com/myhien-tailor/engagement/internal/utils"
)

// Measurement is one body-measurement snapshot. Snapshots are append-only;
// the latest one is the snapshot with the greatest SavedAt.
type Measurement struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customerId"`
	OrderID    string            `json:"orderId,omitempty"`
	Values     map[string]string `json:"values"`
	SavedAt    utils.RFC3339Date `json:"savedAt"`
}

// Value returns the first parsable measurement among the given aliases
// (for example "hip" and "hips"), or 0 when none is present.
func (m *Measurement) Value(aliases ...string) float64 {
	for _, alias := range aliases {
		raw, ok := m.Values[alias]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		return v
	}
	return 0
}
