package requests

// CreateAppointment is the internal input for creating a PENDING
// appointment against the appointment service.
type CreateAppointment struct {
	ScheduleID       string  `json:"scheduleId"`
	PatientID        string  `json:"patientId"`
	AppointmentDate  string  `json:"appointmentDate"`
	AppointmentStart string  `json:"appointmentStart"`
	SlotDuration     int     `json:"slotDuration"`
	InteractedBy     string  `json:"interactedBy"`
	Reason           string  `json:"reason"`
	TotalPrice       float64 `json:"totalPrice"`
}
