package storage

import (
	"context"
	"errors"
)

// Namespaces of the key-value store. Every derived-state component persists
// through these and nothing else.
const (
	NamespaceOrders       = "orders"       // key: order ID, value: one order snapshot
	NamespaceMeasurements = "measurements" // key: customer ID, value: array of snapshots
	NamespaceReferrals    = "referrals"    // key: customer ID, value: referral profile
	NamespaceLoyalty      = "loyalty"      // key: customer ID, value: loyalty snapshot
)

var (
	ErrDuplicateUser = errors.New("user already exists")
)

// KeyValueStore is the persistence port injected into every service. Get
// returns (nil, nil) for a missing record; Set is a full-snapshot overwrite.
// List returns the whole namespace: the referral registry's code lookup and
// uniqueness check span all profiles, and the order classifier scans all
// orders.
type KeyValueStore interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)

	Set(ctx context.Context, namespace, key string, value []byte) error

	List(ctx context.Context, namespace string) (map[string][]byte, error)
}
