package patients

import (
	"context"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientResolver struct {
	PatientClient contracts.PatientClient
	Log           *zap.Logger
}

var (
	patientResolverInstance contracts.PatientResolver
	oncePatientResolver     sync.Once
)

func NewPatientResolver(patientClient contracts.PatientClient, logger *zap.Logger) contracts.PatientResolver {
	oncePatientResolver.Do(func() {
		patientResolverInstance = &patientResolver{
			PatientClient: patientClient,
			Log:           logger,
		}
	})
	return patientResolverInstance
}

// Resolve yields a patient identity for the booking flow. A booking must
// never be blocked on the patient store, so every failure path degrades:
// lookup miss becomes a create, create failure becomes a synthesized id.
// The Synthesized tag tells callers which branch produced the id.
func (r *patientResolver) Resolve(ctx context.Context, token, userID string, form *requests.CreateBooking) models.ResolvedPatient {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("patientResolver.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	existing, err := r.PatientClient.FindByUserID(ctx, token, userID)
	if err == nil && existing != nil && existing.PatientID != "" {
		return models.ResolvedPatient{PatientID: existing.PatientID}
	}
	if err != nil && !exceptions.IsNotFound(err) {
		// Transport or server failure, not an explicit miss. Treated the
		// same way but worth a louder log line.
		r.Log.Error("patientResolver.Resolve lookup failed, treating as miss",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	created, err := r.PatientClient.Create(ctx, token, userID, buildPatientFromForm(userID, form))
	if err != nil || created == nil || created.PatientID == "" {
		syntheticID := utils.GenerateSyntheticPatientID()
		r.Log.Warn("patientResolver.Resolve create failed, synthesizing identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, syntheticID),
			zap.Error(err),
		)
		return models.ResolvedPatient{PatientID: syntheticID, Synthesized: true}
	}

	return models.ResolvedPatient{PatientID: created.PatientID}
}

func buildPatientFromForm(userID string, form *requests.CreateBooking) *models.Patient {
	patient := &models.Patient{
		UserID: userID,
		Gender: models.GenderOther,
	}
	if form == nil {
		patient.InsuranceNum = utils.GenerateInsuranceNumber()
		return patient
	}

	patient.FullName = form.PatientName
	patient.DateOfBirth = form.DateOfBirth
	patient.Address = form.Address
	patient.District = form.District
	patient.City = form.City
	if form.Gender != "" {
		patient.Gender = models.Gender(form.Gender)
	}
	patient.InsuranceNum = form.InsuranceNum
	if patient.InsuranceNum == "" {
		patient.InsuranceNum = utils.GenerateInsuranceNumber()
	}
	return patient
}
