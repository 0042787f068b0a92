package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type AppointmentClient interface {
	Create(ctx context.Context, token string, appointment *models.Appointment) (*models.Appointment, error)
	ChangeStatus(ctx context.Context, token, appointmentID string, status models.AppointmentStatus) error
	FindByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	CancelPayment(ctx context.Context, token, appointmentID string) error
}

type AppointmentUsecase interface {
	Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
	Confirm(ctx context.Context, token, appointmentID string) error
	Status(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	CancelPayment(ctx context.Context, token, appointmentID string) error
}
