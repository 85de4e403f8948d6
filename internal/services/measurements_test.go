package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhien-tailor/engagement/internal/storage"
)

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	svc := NewMeasurementService(storage.NewMemory())
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	record, err := svc.Append(context.Background(), "customer-1", map[string]string{"chest": "90"}, "O-1")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, strings.HasPrefix(record.ID, "M-"))
	assert.Equal(t, "customer-1", record.CustomerID)
	assert.Equal(t, "O-1", record.OrderID)
	assert.Equal(t, frozen, record.SavedAt.Time)
}

func TestAppendWithoutCustomerIsNoop(t *testing.T) {
	svc := NewMeasurementService(storage.NewMemory())

	record, err := svc.Append(context.Background(), "", map[string]string{"chest": "90"}, "")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestListNewestFirstAndLatest(t *testing.T) {
	svc := NewMeasurementService(storage.NewMemory())
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		current = current.Add(time.Hour)
		return current
	}

	_, err := svc.Append(ctx, "customer-1", map[string]string{"chest": "90"}, "")
	require.NoError(t, err)
	second, err := svc.Append(ctx, "customer-1", map[string]string{"chest": "92"}, "")
	require.NoError(t, err)

	snapshots, err := svc.List(ctx, "customer-1")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, second.ID, snapshots[0].ID)

	latest, err := svc.Latest(ctx, "customer-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "92", latest.Values["chest"])
}

func TestLatestWithoutHistory(t *testing.T) {
	svc := NewMeasurementService(storage.NewMemory())

	latest, err := svc.Latest(context.Background(), "customer-1")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestListRecoversFromCorruptHistory(t *testing.T) {
	store := storage.NewMemory()
	svc := NewMeasurementService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.NamespaceMeasurements, "customer-1", []byte("{broken")))

	snapshots, err := svc.List(ctx, "customer-1")
	require.NoError(t, err)
	assert.Empty(t, snapshots)

	record, err := svc.Append(ctx, "customer-1", map[string]string{"chest": "90"}, "")
	require.NoError(t, err)
	require.NotNil(t, record)
}
