package responses

// BookingSummary is the pending-payment snapshot merged with what the
// gateway reported, shown to the user on the post-payment page.
type BookingSummary struct {
	AppointmentID    string  `json:"appointmentId"`
	PatientID        string  `json:"patientId"`
	DoctorName       string  `json:"doctorName"`
	AppointmentDate  string  `json:"appointmentDate"`
	AppointmentStart string  `json:"appointmentStart"`
	AppointmentEnd   string  `json:"appointmentEnd"`
	Reason           string  `json:"reason"`
	TotalPrice       float64 `json:"totalPrice"`
	AmountPaid       string  `json:"amountPaid"`
	GatewayMessage   string  `json:"gatewayMessage"`
	Status           string  `json:"status"`
}

type PaymentCallbackResult struct {
	State            string          `json:"state"`
	ResultCode       string          `json:"resultCode"`
	AppointmentID    string          `json:"appointmentId"`
	CountdownSeconds int             `json:"countdownSeconds,omitempty"`
	RedirectPath     string          `json:"redirectPath,omitempty"`
	Summary          *BookingSummary `json:"summary,omitempty"`
}

// MomoCreatePaymentResult is the subset of the gateway's create response
// the service acts on.
type MomoCreatePaymentResult struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

type AvailableSlotsResult struct {
	DoctorID string      `json:"doctorId"`
	Date     string      `json:"date"`
	Slots    interface{} `json:"slots"`
}
