package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, mw *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(mw.Auth).Post("/", bookingController.CreateBooking)
}
