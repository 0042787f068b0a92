package bookings

import (
	"context"
	"fmt"
	"sync"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	ScheduleClient        contracts.ScheduleClient
	PatientResolver       contracts.PatientResolver
	AppointmentUsecase    contracts.AppointmentUsecase
	PaymentGateway        contracts.PaymentGatewayService
	PendingPaymentStore   contracts.PendingPaymentStore
	TransactionRepository contracts.TransactionRepository
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	scheduleClient contracts.ScheduleClient,
	patientResolver contracts.PatientResolver,
	appointmentUsecase contracts.AppointmentUsecase,
	paymentGateway contracts.PaymentGatewayService,
	pendingPaymentStore contracts.PendingPaymentStore,
	transactionRepository contracts.TransactionRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			ScheduleClient:        scheduleClient,
			PatientResolver:       patientResolver,
			AppointmentUsecase:    appointmentUsecase,
			PaymentGateway:        paymentGateway,
			PendingPaymentStore:   pendingPaymentStore,
			TransactionRepository: transactionRepository,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

// Book runs the whole booking flow: validate, fetch schedule, resolve the
// patient, create a PENDING appointment, create the gateway payment and
// persist the pending-payment snapshot for the callback. Only validation,
// appointment creation and payment creation can fail the booking; the
// bookkeeping steps after them are best effort.
func (uc *bookingUsecase) Book(ctx context.Context, token, userID string, request *requests.CreateBooking) (*responses.BookingResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	schedule, err := uc.ScheduleClient.FindByDoctorID(ctx, token, request.DoctorID)
	if err != nil {
		if !exceptions.IsNotFound(err) {
			uc.Log.Error("bookingUsecase.Book error fetching schedule",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		// No schedule registered for the doctor; book against defaults.
		schedule = &models.Schedule{DoctorID: request.DoctorID}
	}

	resolved := uc.PatientResolver.Resolve(ctx, token, userID, request)

	totalPrice := request.TotalPrice
	if totalPrice == 0 {
		totalPrice = schedule.ConsultationFee
	}

	appointment, err := uc.AppointmentUsecase.Create(ctx, token, &requests.CreateAppointment{
		ScheduleID:       schedule.ScheduleID,
		PatientID:        resolved.PatientID,
		AppointmentDate:  request.AppointmentDate,
		AppointmentStart: request.AppointmentTime,
		SlotDuration:     schedule.SlotDuration,
		InteractedBy:     userID,
		Reason:           request.Reason,
		TotalPrice:       totalPrice,
	})
	if err != nil {
		return nil, err
	}

	correlationID := utils.GenerateCorrelationID()
	orderInfo := fmt.Sprintf("Payment for appointment %s", appointment.AppointmentID)
	payment, err := uc.PaymentGateway.CreatePayment(ctx, correlationID, appointment.AppointmentID, orderInfo, totalPrice)
	if err != nil {
		uc.Log.Error("bookingUsecase.Book error creating gateway payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	record := &models.PendingPaymentRecord{
		CorrelationID:    correlationID,
		AppointmentID:    appointment.AppointmentID,
		PatientID:        resolved.PatientID,
		DoctorName:       request.DoctorName,
		AppointmentDate:  appointment.AppointmentDate,
		AppointmentStart: appointment.AppointmentStart,
		AppointmentEnd:   appointment.AppointmentEnd,
		Reason:           appointment.Reason,
		TotalPrice:       totalPrice,
		BearerToken:      token,
	}
	if err := uc.PendingPaymentStore.Save(ctx, record); err != nil {
		// The callback tolerates a missing record, so the booking is not
		// failed over this.
		uc.Log.Error("bookingUsecase.Book error saving pending payment record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	transaction := &models.Transaction{
		ID:            correlationID,
		AppointmentID: appointment.AppointmentID,
		PatientID:     resolved.PatientID,
		DoctorID:      request.DoctorID,
		PaymentLink:   payment.PayURL,
		Amount:        totalPrice,
		Currency:      "VND",
		StatusPayment: models.TransactionPending,
	}
	if err := uc.TransactionRepository.Insert(ctx, transaction); err != nil {
		uc.Log.Error("bookingUsecase.Book error inserting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	event := &models.NotificationEvent{
		Type:          constvars.NotificationTypeBooking,
		Message:       fmt.Sprintf("Appointment %s booked, awaiting payment", appointment.AppointmentID),
		Recipient:     request.Email,
		UserID:        userID,
		AppointmentID: appointment.AppointmentID,
		Status:        string(models.AppointmentStatusPending),
	}
	if err := uc.NotificationService.Publish(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase.Book error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.BookingResult{
		AppointmentID:    appointment.AppointmentID,
		PatientID:        resolved.PatientID,
		PatientSynthetic: resolved.Synthesized,
		DoctorName:       request.DoctorName,
		AppointmentDate:  appointment.AppointmentDate,
		AppointmentStart: appointment.AppointmentStart,
		AppointmentEnd:   appointment.AppointmentEnd,
		Reason:           appointment.Reason,
		Status:           string(models.AppointmentStatusPending),
		TotalPrice:       totalPrice,
		PayURL:           payment.PayURL,
		CorrelationID:    correlationID,
	}, nil
}
