package routers

import (
	"fmt"

	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, mw *middlewares.Middlewares, slotController *slots.SlotController) {
	pattern := fmt.Sprintf("/{%s}/slots", constvars.URLParamDoctorID)
	router.With(mw.Auth).Get(pattern, slotController.GetAvailableSlots)
}
