package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/middlewares"
	"github.com/myhien-tailor/engagement/internal/models"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config                Config
	authService           models.AuthService
	jwtService            models.JWTService
	orderService          models.OrderService
	historyService        models.HistoryService
	loyaltyService        models.LoyaltyService
	referralService       models.ReferralService
	measurementService    models.MeasurementService
	recommendationService models.RecommendationService
}

func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	historyService models.HistoryService,
	loyaltyService models.LoyaltyService,
	referralService models.ReferralService,
	measurementService models.MeasurementService,
	recommendationService models.RecommendationService,
) *Router {
	return &Router{
		config,
		authService,
		jwtService,
		orderService,
		historyService,
		loyaltyService,
		referralService,
		measurementService,
		recommendationService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.authService,
			router.jwtService,
			router.orderService,
			router.historyService,
			router.loyaltyService,
			router.referralService,
			router.measurementService,
			router.recommendationService,
		),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/customer/register",
			"/api/customer/login",
		).Middleware,
	)

	r.Route("/api/customer", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/register", Register)
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/login", Login)

		r.With(middlewares.JSONMiddleware[models.Order]).Post("/orders", CreateOrder)
		r.Get("/orders", GetOrders)
		r.With(middlewares.JSONMiddleware[models.OrderStatusUpdate]).Put("/orders/{orderID}/status", UpdateOrderStatus)
		r.With(middlewares.TextMiddleware).Post("/orders/{orderID}/referral", ApplyReferral)

		r.Get("/products", GetProducts)
		r.Get("/loyalty", GetLoyalty)
		r.Get("/referral", GetReferral)
		r.Get("/recommendations", GetRecommendations)

		r.With(middlewares.JSONMiddleware[map[string]string]).Post("/measurements", CreateMeasurement)
		r.Get("/measurements", GetMeasurements)
	})

	return r
}

func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
