package models

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is created PENDING by the booking orchestrator and moved to a
// terminal status only by the payment callback processor.
type Appointment struct {
	AppointmentID    string            `json:"appointmentId"`
	ScheduleID       string            `json:"scheduleId"`
	PatientID        string            `json:"patientId"`
	Status           AppointmentStatus `json:"status"`
	AppointmentDate  string            `json:"appointmentDate"`
	AppointmentStart string            `json:"appointmentStart"`
	AppointmentEnd   string            `json:"appointmentEnd"`
	InteractedBy     string            `json:"interactedBy"`
	Reason           string            `json:"reason"`
	TotalPrice       float64           `json:"totalPrice"`
}
