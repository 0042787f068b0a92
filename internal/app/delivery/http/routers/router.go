package routers

import (
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	bookingController *bookings.BookingController,
	paymentController *payments.PaymentController,
	slotController *slots.SlotController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(mw.RequestID)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, mw, bookingController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, mw, internalConfig, paymentController)
		})

		r.Route("/schedules", func(r chi.Router) {
			attachScheduleRoutes(r, mw, slotController)
		})
	})
}
