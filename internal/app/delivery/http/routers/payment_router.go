package routers

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

// The callback route is hit by the gateway redirect, not by an
// authenticated client, so it gets its own per-IP limiter instead of the
// auth middleware.
func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, internalConfig *config.InternalConfig, paymentController *payments.PaymentController) {
	callbackLimiter := middlewares.NewRateLimiter(
		internalConfig.Payment.CallbackRequestsPerSecond,
		internalConfig.Payment.CallbackRequestsPerSecond*2,
	)
	router.With(callbackLimiter.Limit).Get("/momo/callback", paymentController.MomoCallback)
}
