package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/myhien-tailor/engagement/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	OrderServiceKey
	HistoryServiceKey
	LoyaltyServiceKey
	ReferralServiceKey
	MeasurementServiceKey
	RecommendationServiceKey
)

// ServiceInjectorMiddleware places every service into the request context so
// handlers stay plain http.HandlerFuncs.
func ServiceInjectorMiddleware(
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	historyService models.HistoryService,
	loyaltyService models.LoyaltyService,
	referralService models.ReferralService,
	measurementService models.MeasurementService,
	recommendationService models.RecommendationService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, authService)
			ctx = context.WithValue(ctx, JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, OrderServiceKey, orderService)
			ctx = context.WithValue(ctx, HistoryServiceKey, historyService)
			ctx = context.WithValue(ctx, LoyaltyServiceKey, loyaltyService)
			ctx = context.WithValue(ctx, ReferralServiceKey, referralService)
			ctx = context.WithValue(ctx, MeasurementServiceKey, measurementService)
			ctx = context.WithValue(ctx, RecommendationServiceKey, recommendationService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
