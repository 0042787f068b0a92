package constvars

const (
	DefaultSlotDurationMinutes = 30

	// PendingPaymentTTLMinutes bounds how long a pending-payment record is
	// honoured after the user is redirected to the gateway.
	PendingPaymentTTLMinutes = 30

	// RedirectCountdownSeconds is the delay before the success view
	// auto-redirects to the booking summary.
	RedirectCountdownSeconds = 5

	// CancelGraceSeconds is the delay before a failed payment triggers the
	// compensating cancellation, letting any in-flight confirm settle.
	CancelGraceSeconds = 3

	InsuranceNumberPrefix     = "BH"
	SyntheticPatientIDPrefix  = "patient_"
	DefaultAppointmentReason  = "Scheduled consultation"
	NotificationTypeBooking   = "APPOINTMENT_BOOKED"
	NotificationTypeConfirmed = "APPOINTMENT_CONFIRMED"
	NotificationTypeCancelled = "APPOINTMENT_CANCELLED"
)
