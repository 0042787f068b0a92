package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type PatientClient interface {
	FindByUserID(ctx context.Context, token, userID string) (*models.Patient, error)
	Create(ctx context.Context, token, userID string, patient *models.Patient) (*models.Patient, error)
}

// PatientResolver yields a usable patient identity for a booking. It never
// fails; when the patient store cannot serve, the result is synthesized
// and tagged as such.
type PatientResolver interface {
	Resolve(ctx context.Context, token, userID string, form *requests.CreateBooking) models.ResolvedPatient
}
