package models

import "time"

type TransactionStatusPayment string

const (
	TransactionPending   TransactionStatusPayment = "pending"
	TransactionCompleted TransactionStatusPayment = "completed"
	TransactionFailed    TransactionStatusPayment = "failed"
)

// Transaction tracks the payment lifecycle of one appointment. One record
// per appointment; the callback processor moves it to a terminal status.
type Transaction struct {
	ID            string                   `json:"id" bson:"_id"`
	AppointmentID string                   `json:"appointment_id" bson:"appointment_id"`
	PatientID     string                   `json:"patient_id" bson:"patient_id"`
	DoctorID      string                   `json:"doctor_id" bson:"doctor_id"`
	PaymentLink   string                   `json:"payment_link" bson:"payment_link"`
	Amount        float64                  `json:"amount" bson:"amount"`
	Currency      string                   `json:"currency" bson:"currency"`
	StatusPayment TransactionStatusPayment `json:"status_payment" bson:"status_payment"`
	GatewayCode   string                   `json:"gateway_code,omitempty" bson:"gateway_code,omitempty"`
	CreatedAt     time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at" bson:"updated_at"`
}
