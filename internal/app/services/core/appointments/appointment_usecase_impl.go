package appointments

import (
	"context"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(appointmentClient contracts.AppointmentClient, logger *zap.Logger) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentClient: appointmentClient,
			Log:               logger,
		}
	})
	return appointmentUsecaseInstance
}

// Create books a PENDING appointment. The end time is derived from the
// start plus the slot duration and wraps past midnight within the day,
// so "23:45" with a 30 minute slot ends at "00:15:00".
func (uc *appointmentUsecase) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	slotDuration := request.SlotDuration
	if slotDuration <= 0 {
		slotDuration = constvars.DefaultSlotDurationMinutes
	}

	endTime, err := utils.AddMinutesToClock(request.AppointmentStart, slotDuration)
	if err != nil {
		return nil, err
	}

	reason := request.Reason
	if reason == "" {
		reason = constvars.DefaultAppointmentReason
	}

	appointment := &models.Appointment{
		ScheduleID:       request.ScheduleID,
		PatientID:        request.PatientID,
		Status:           models.AppointmentStatusPending,
		AppointmentDate:  request.AppointmentDate,
		AppointmentStart: request.AppointmentStart,
		AppointmentEnd:   endTime,
		InteractedBy:     request.InteractedBy,
		Reason:           reason,
		TotalPrice:       request.TotalPrice,
	}

	created, err := uc.AppointmentClient.Create(ctx, token, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Some appointment-service responses omit the derived fields; keep the
	// locally computed values authoritative for the caller.
	if created.AppointmentEnd == "" {
		created.AppointmentEnd = endTime
	}
	if created.Status == "" {
		created.Status = models.AppointmentStatusPending
	}
	return created, nil
}

func (uc *appointmentUsecase) Confirm(ctx context.Context, token, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.AppointmentClient.ChangeStatus(ctx, token, appointmentID, models.AppointmentStatusConfirmed)
}

func (uc *appointmentUsecase) Status(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Status called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.AppointmentClient.FindByID(ctx, token, appointmentID)
}

func (uc *appointmentUsecase) CancelPayment(ctx context.Context, token, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.AppointmentClient.CancelPayment(ctx, token, appointmentID)
}
