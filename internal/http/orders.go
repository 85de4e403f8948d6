package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myhien-tailor/engagement/internal/middlewares"
	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/services"
)

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.Order](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	order, err := (*orderService).CreateOrder(r.Context(), data, user.Identity())
	if err != nil {
		if errors.Is(err, services.ErrDuplicateOrder) {
			http.Error(w, "Order already exists", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrInvalidOrderStatus) {
			http.Error(w, "Order status is invalid", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during creating order: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, order)
}

func GetOrders(w http.ResponseWriter, r *http.Request) {
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

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	data := middlewares.GetParsedJSONData[models.OrderStatusUpdate](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).UpdateStatus(r.Context(), orderID, data.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order does not exist", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrInvalidOrderStatus) {
			http.Error(w, "Order status is invalid", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during updating order status: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

func ApplyReferral(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	code := middlewares.GetParsedTextData(w, r)

	if len(code) == 0 {
		http.Error(w, "Referral code is empty", http.StatusUnprocessableEntity)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	match, err := (*orderService).ApplyReferral(r.Context(), orderID, code, "")
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order does not exist", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during applying referral code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// An unknown code is accepted but matches nobody.
	if match == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	middlewares.EncodeJSONResponse(w, match)
}
