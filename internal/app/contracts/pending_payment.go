package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// PendingPaymentStore persists the snapshot written at booking time until
// the payment callback consumes it. A missing record is reported as
// (nil, nil), never as an error.
type PendingPaymentStore interface {
	Save(ctx context.Context, record *models.PendingPaymentRecord) error
	FindByCorrelationID(ctx context.Context, correlationID string) (*models.PendingPaymentRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.PendingPaymentRecord, error)
	DeleteByAppointmentID(ctx context.Context, appointmentID string) error
}
