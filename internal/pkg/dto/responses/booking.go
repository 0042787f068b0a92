package responses

type BookingResult struct {
	AppointmentID    string  `json:"appointmentId"`
	PatientID        string  `json:"patientId"`
	PatientSynthetic bool    `json:"patientSynthetic"`
	DoctorName       string  `json:"doctorName"`
	AppointmentDate  string  `json:"appointmentDate"`
	AppointmentStart string  `json:"appointmentStart"`
	AppointmentEnd   string  `json:"appointmentEnd"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	TotalPrice       float64 `json:"totalPrice"`
	PayURL           string  `json:"payUrl"`
	CorrelationID    string  `json:"correlationId"`
}
