package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

// MeasurementService keeps append-only body-measurement snapshots per
// customer. Snapshots are never edited in place; "latest" means the greatest
// SavedAt.
type MeasurementService struct {
	storage storage.KeyValueStore
	now     func() time.Time
}

func NewMeasurementService(store storage.KeyValueStore) *MeasurementService {
	return &MeasurementService{storage: store, now: time.Now}
}

func (m *MeasurementService) load(ctx context.Context, customerID string) ([]models.Measurement, error) {
	raw, err := m.storage.Get(ctx, storage.NamespaceMeasurements, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read measurements: %w", err)
	}
	if raw == nil {
		return []models.Measurement{}, nil
	}

	var snapshots []models.Measurement
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		// Corrupt history degrades to empty; appends start a fresh list.
		logger.Log.Warn("discarding corrupt measurement history",
			zap.String("customerID", customerID),
			zap.Error(err),
		)
		return []models.Measurement{}, nil
	}
	return snapshots, nil
}

// Append stores a new snapshot and returns it.
func (m *MeasurementService) Append(ctx context.Context, customerID string, values map[string]string, orderID string) (*models.Measurement, error) {
	if customerID == "" {
		return nil, nil
	}

	snapshots, err := m.load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	record := models.Measurement{
		ID:         fmt.Sprintf("M-%s", uuid.NewString()),
		CustomerID: customerID,
		OrderID:    orderID,
		Values:     values,
		SavedAt:    utils.NewRFC3339Date(m.now()),
	}
	snapshots = append(snapshots, record)

	raw, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal measurements: %w", err)
	}
	if err := m.storage.Set(ctx, storage.NamespaceMeasurements, customerID, raw); err != nil {
		return nil, fmt.Errorf("failed to persist measurements: %w", err)
	}

	return &record, nil
}

// List returns all snapshots, newest first.
func (m *MeasurementService) List(ctx context.Context, customerID string) ([]models.Measurement, error) {
	snapshots, err := m.load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[j].SavedAt.Time.Before(snapshots[i].SavedAt.Time)
	})
	return snapshots, nil
}

// Latest returns the newest snapshot, or nil when there is none.
func (m *MeasurementService) Latest(ctx context.Context, customerID string) (*models.Measurement, error) {
	snapshots, err := m.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}
