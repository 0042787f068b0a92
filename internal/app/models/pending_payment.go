package models

// PendingPaymentRecord is the ephemeral snapshot written before redirecting
// to the payment gateway and consumed exactly once by the callback
// processor. Its absence must always be tolerated.
type PendingPaymentRecord struct {
	CorrelationID    string  `json:"correlationId"`
	AppointmentID    string  `json:"appointmentId"`
	PatientID        string  `json:"patientId"`
	DoctorName       string  `json:"doctorName"`
	AppointmentDate  string  `json:"appointmentDate"`
	AppointmentStart string  `json:"appointmentStart"`
	AppointmentEnd   string  `json:"appointmentEnd"`
	Reason           string  `json:"reason"`
	TotalPrice       float64 `json:"totalPrice"`
	// BearerToken is the booking caller's credential, carried here because
	// the gateway redirect that consumes the record is unauthenticated but
	// the upstream confirm/cancel calls are not.
	BearerToken     string `json:"bearerToken"`
	CreatedAtUnixMs int64  `json:"createdAtUnixMs"`
}
