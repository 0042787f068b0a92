package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *models.Transaction) error
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error)
	UpdateStatusByAppointmentID(ctx context.Context, appointmentID string, status models.TransactionStatusPayment, gatewayCode string) error
}
