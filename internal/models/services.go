package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Register(ctx context.Context, user UnknownUser) error

	Login(ctx context.Context, user UnknownUser) error

	GetUser(ctx context.Context, login string) (*User, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	CreateOrder(ctx context.Context, order Order, identity CustomerIdentity) (*Order, error)

	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)

	ApplyReferral(ctx context.Context, orderID, code, referredName string) (*ReferralMatch, error)
}

//go:generate mockgen -destination=mocks/mock_history.go . HistoryService
type HistoryService interface {
	CustomerOrders(ctx context.Context, identity CustomerIdentity) ([]Order, error)

	ProductCards(orders []Order) []ProductCard
}

//go:generate mockgen -destination=mocks/mock_loyalty.go . LoyaltyService
type LoyaltyService interface {
	Compute(orders []Order) LoyaltyProfile

	Persist(ctx context.Context, customerID string, profile LoyaltyProfile) error

	Refresh(ctx context.Context, identity CustomerIdentity) (LoyaltyProfile, error)
}

//go:generate mockgen -destination=mocks/mock_referral.go . ReferralService
type ReferralService interface {
	GetOrCreateProfile(ctx context.Context, customerID, seedName string) (*ReferralProfile, error)

	RecordOrderCreated(ctx context.Context, code, orderID, referredName string) (*ReferralMatch, error)

	RecordOrderCompleted(ctx context.Context, code, orderID string) (*ReferralProfile, error)
}

//go:generate mockgen -destination=mocks/mock_measurement.go . MeasurementService
type MeasurementService interface {
	Append(ctx context.Context, customerID string, values map[string]string, orderID string) (*Measurement, error)

	List(ctx context.Context, customerID string) ([]Measurement, error)

	Latest(ctx context.Context, customerID string) (*Measurement, error)
}

//go:generate mockgen -destination=mocks/mock_recommendation.go . RecommendationService
type RecommendationService interface {
	Generate(cards []ProductCard, latest *Measurement) []Recommendation
}
