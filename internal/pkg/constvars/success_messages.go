package constvars

const (
	CreateBookingSuccessMessage        = "Successfully created booking"
	ProcessPaymentCallbackMessage      = "Successfully processed payment callback"
	GetAvailableSlotsSuccessMessage    = "Successfully fetched available slots"
	GetBookingSummarySuccessMessage    = "Successfully fetched booking summary"
	GetAppointmentStatusSuccessMessage = "Successfully fetched appointment status"
)
