package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

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

type paymentUsecase struct {
	AppointmentUsecase    contracts.AppointmentUsecase
	PendingPaymentStore   contracts.PendingPaymentStore
	TransactionRepository contracts.TransactionRepository
	NotificationService   contracts.NotificationService
	Scheduler             contracts.Scheduler
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	appointmentUsecase contracts.AppointmentUsecase,
	pendingPaymentStore contracts.PendingPaymentStore,
	transactionRepository contracts.TransactionRepository,
	notificationService contracts.NotificationService,
	scheduler contracts.Scheduler,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentUsecase:    appointmentUsecase,
			PendingPaymentStore:   pendingPaymentStore,
			TransactionRepository: transactionRepository,
			NotificationService:   notificationService,
			Scheduler:             scheduler,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// ProcessCallback drives the state machine for one gateway redirect. The
// callback carries no signature, so the resultCode is taken at face value
// against the success allowlist. Duplicate deliveries are safe: confirm is
// idempotent upstream and a consumed pending record reads as absent.
func (uc *paymentUsecase) ProcessCallback(ctx context.Context, token string, callback *requests.MomoCallback) (result *responses.PaymentCallbackResult, err error) {
	requestID := utils.GetRequestID(ctx)

	defer func() {
		if recovered := recover(); recovered != nil {
			uc.Log.Error("paymentUsecase.ProcessCallback panic",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Any("panic", recovered),
			)
			result = &responses.PaymentCallbackResult{State: string(StateError)}
			err = exceptions.ErrServerProcess(fmt.Errorf("%v", recovered))
		}
	}()

	uc.Log.Info("paymentUsecase.ProcessCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultCodeKey, callback.ResultCode),
		zap.String(constvars.LoggingAppointmentIDKey, callback.OrderID),
	)

	if callback.OrderID == "" {
		return &responses.PaymentCallbackResult{State: string(StateError)}, exceptions.ErrCallbackMissingOrderID(nil)
	}

	record, err := uc.PendingPaymentStore.FindByAppointmentID(ctx, callback.OrderID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ProcessCallback error reading pending record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	// The gateway redirect arrives without an Authorization header; the
	// upstream calls below reuse the credential the booking stored with
	// the pending record.
	if token == "" && record != nil {
		token = record.BearerToken
	}

	state := StateProcessing
	if _, success := constvars.MomoSuccessResultCodes[callback.ResultCode]; success {
		return uc.processSuccess(ctx, token, state, record, callback)
	}
	return uc.processFailure(ctx, token, state, record, callback)
}

func (uc *paymentUsecase) processSuccess(ctx context.Context, token string, state State, record *models.PendingPaymentRecord, callback *requests.MomoCallback) (*responses.PaymentCallbackResult, error) {
	requestID := utils.GetRequestID(ctx)
	appointmentID := callback.OrderID

	state, _ = Transition(state, EventGatewaySuccess)

	// Confirm failure after a gateway success must not regress the state;
	// the money moved, the status read below stays authoritative.
	if err := uc.AppointmentUsecase.Confirm(ctx, token, appointmentID); err != nil {
		uc.Log.Error("paymentUsecase.processSuccess error confirming appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	appointment, err := uc.AppointmentUsecase.Status(ctx, token, appointmentID)
	if err != nil {
		uc.Log.Error("paymentUsecase.processSuccess error reading appointment status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	state, _ = Transition(state, EventConfirmCompleted)

	if deleteErr := uc.PendingPaymentStore.DeleteByAppointmentID(ctx, appointmentID); deleteErr != nil {
		uc.Log.Error("paymentUsecase.processSuccess error deleting pending record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(deleteErr),
		)
	}

	if err := uc.TransactionRepository.UpdateStatusByAppointmentID(ctx, appointmentID, models.TransactionCompleted, callback.ResultCode); err != nil {
		uc.Log.Error("paymentUsecase.processSuccess error updating transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.publishEvent(ctx, constvars.NotificationTypeConfirmed, appointmentID, record,
		fmt.Sprintf("Payment received, appointment %s confirmed", appointmentID))

	countdown := uc.InternalConfig.Payment.RedirectCountdownInSecond
	uc.Scheduler.Schedule(redirectTimerID(appointmentID), time.Duration(countdown)*time.Second, func() {
		uc.Log.Info("paymentUsecase redirect countdown elapsed",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
	})

	uc.Log.Info("paymentUsecase.processSuccess done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStateKey, string(state)),
	)

	return &responses.PaymentCallbackResult{
		State:            string(state),
		ResultCode:       callback.ResultCode,
		AppointmentID:    appointmentID,
		CountdownSeconds: countdown,
		RedirectPath:     fmt.Sprintf("/appointments/%s", appointmentID),
		Summary:          buildSummary(record, appointment, callback),
	}, nil
}

func (uc *paymentUsecase) processFailure(ctx context.Context, token string, state State, record *models.PendingPaymentRecord, callback *requests.MomoCallback) (*responses.PaymentCallbackResult, error) {
	requestID := utils.GetRequestID(ctx)
	appointmentID := callback.OrderID

	state, _ = Transition(state, EventGatewayFailure)

	if deleteErr := uc.PendingPaymentStore.DeleteByAppointmentID(ctx, appointmentID); deleteErr != nil {
		uc.Log.Error("paymentUsecase.processFailure error deleting pending record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(deleteErr),
		)
	}

	if err := uc.TransactionRepository.UpdateStatusByAppointmentID(ctx, appointmentID, models.TransactionFailed, callback.ResultCode); err != nil {
		uc.Log.Error("paymentUsecase.processFailure error updating transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.publishEvent(ctx, constvars.NotificationTypeCancelled, appointmentID, record,
		fmt.Sprintf("Payment failed for appointment %s", appointmentID))

	// One compensating cancel after the grace delay; its outcome is logged
	// and never surfaced to the gateway.
	grace := uc.InternalConfig.Payment.CancelGraceInSecond
	uc.Scheduler.Schedule(cancelTimerID(appointmentID), time.Duration(grace)*time.Second, func() {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.AppointmentUsecase.CancelPayment(cancelCtx, token, appointmentID); err != nil {
			uc.Log.Error("paymentUsecase compensating cancel failed",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)
			return
		}
		next, _ := Transition(StateFailed, EventCancelCompleted)
		uc.Log.Info("paymentUsecase compensating cancel done",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingStateKey, string(next)),
		)
	})

	uc.Log.Info("paymentUsecase.processFailure done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStateKey, string(state)),
	)

	return &responses.PaymentCallbackResult{
		State:         string(state),
		ResultCode:    callback.ResultCode,
		AppointmentID: appointmentID,
		Summary:       buildSummary(record, nil, callback),
	}, nil
}

func (uc *paymentUsecase) publishEvent(ctx context.Context, eventType, appointmentID string, record *models.PendingPaymentRecord, message string) {
	event := &models.NotificationEvent{
		Type:          eventType,
		Message:       message,
		AppointmentID: appointmentID,
	}
	if record != nil {
		event.UserID = record.PatientID
	}
	switch eventType {
	case constvars.NotificationTypeConfirmed:
		event.Status = string(models.AppointmentStatusConfirmed)
	case constvars.NotificationTypeCancelled:
		event.Status = string(models.AppointmentStatusCancelled)
	}

	if err := uc.NotificationService.Publish(ctx, event); err != nil {
		uc.Log.Error("paymentUsecase error publishing notification",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

// buildSummary merges the pending snapshot with whatever the gateway and
// the appointment service reported. Any of the three sources may be
// missing.
func buildSummary(record *models.PendingPaymentRecord, appointment *models.Appointment, callback *requests.MomoCallback) *responses.BookingSummary {
	summary := &responses.BookingSummary{
		AppointmentID:  callback.OrderID,
		AmountPaid:     callback.Amount,
		GatewayMessage: callback.Message,
	}
	if record != nil {
		summary.PatientID = record.PatientID
		summary.DoctorName = record.DoctorName
		summary.AppointmentDate = record.AppointmentDate
		summary.AppointmentStart = record.AppointmentStart
		summary.AppointmentEnd = record.AppointmentEnd
		summary.Reason = record.Reason
		summary.TotalPrice = record.TotalPrice
	}
	if appointment != nil {
		summary.Status = string(appointment.Status)
		if summary.AppointmentDate == "" {
			summary.AppointmentDate = appointment.AppointmentDate
		}
		if summary.AppointmentStart == "" {
			summary.AppointmentStart = appointment.AppointmentStart
		}
		if summary.AppointmentEnd == "" {
			summary.AppointmentEnd = appointment.AppointmentEnd
		}
	}
	return summary
}

func redirectTimerID(appointmentID string) string {
	return "redirect:" + appointmentID
}

func cancelTimerID(appointmentID string) string {
	return "cancel:" + appointmentID
}
