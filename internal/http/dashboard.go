package router

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/middlewares"
	"github.com/myhien-tailor/engagement/internal/models"
)

func GetProducts(w http.ResponseWriter, r *http.Request) {
	historyService := middlewares.GetServiceFromContext[models.HistoryService](w, r, middlewares.HistoryServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	orders, err := (*historyService).CustomerOrders(r.Context(), user.Identity())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, (*historyService).ProductCards(orders))
}

func GetLoyalty(w http.ResponseWriter, r *http.Request) {
	loyaltyService := middlewares.GetServiceFromContext[models.LoyaltyService](w, r, middlewares.LoyaltyServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	profile, err := (*loyaltyService).Refresh(r.Context(), user.Identity())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during refreshing loyalty: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, profile)
}

func GetReferral(w http.ResponseWriter, r *http.Request) {
	referralService := middlewares.GetServiceFromContext[models.ReferralService](w, r, middlewares.ReferralServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	profile, err := (*referralService).GetOrCreateProfile(r.Context(), user.Login, user.Name)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting referral profile: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, profile)
}

// GetRecommendations never fails the request: an error on either input
// degrades that input to empty and the suggestions shrink accordingly.
func GetRecommendations(w http.ResponseWriter, r *http.Request) {
	historyService := middlewares.GetServiceFromContext[models.HistoryService](w, r, middlewares.HistoryServiceKey)
	measurementService := middlewares.GetServiceFromContext[models.MeasurementService](w, r, middlewares.MeasurementServiceKey)
	recommendationService := middlewares.GetServiceFromContext[models.RecommendationService](w, r, middlewares.RecommendationServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	cards := []models.ProductCard{}
	orders, err := (*historyService).CustomerOrders(r.Context(), user.Identity())
	if err != nil {
		logger.Log.Warn("degrading recommendations to empty history", zap.Error(err))
	} else {
		cards = (*historyService).ProductCards(orders)
	}

	latest, err := (*measurementService).Latest(r.Context(), user.Login)
	if err != nil {
		logger.Log.Warn("degrading recommendations to no measurements", zap.Error(err))
		latest = nil
	}

	middlewares.EncodeJSONResponse(w, (*recommendationService).Generate(cards, latest))
}
