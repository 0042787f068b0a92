package models

// NotificationEvent is published to the notification queue whenever an
// appointment changes state. Delivery is best effort.
type NotificationEvent struct {
	Type          string `json:"type"`
	Message       string `json:"message"`
	Recipient     string `json:"recipient"`
	UserID        string `json:"userId"`
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status"`
}
