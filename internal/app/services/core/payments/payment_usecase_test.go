package payments

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentUsecase struct {
	confirmCalls atomic.Int32
	statusCalls  atomic.Int32
	cancelCalls  atomic.Int32
	confirmToken atomic.Value
	statusToken  atomic.Value
	cancelToken  atomic.Value
	confirmErr   error
	statusErr    error
	cancelErr    error
}

func (f *fakeAppointmentUsecase) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	return nil, errors.New("not used")
}

func (f *fakeAppointmentUsecase) Confirm(ctx context.Context, token, appointmentID string) error {
	f.confirmCalls.Add(1)
	f.confirmToken.Store(token)
	return f.confirmErr
}

func (f *fakeAppointmentUsecase) Status(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	f.statusCalls.Add(1)
	f.statusToken.Store(token)
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.Appointment{
		AppointmentID:    appointmentID,
		Status:           models.AppointmentStatusConfirmed,
		AppointmentDate:  "2025-06-02",
		AppointmentStart: "09:00",
		AppointmentEnd:   "09:30:00",
	}, nil
}

func (f *fakeAppointmentUsecase) CancelPayment(ctx context.Context, token, appointmentID string) error {
	f.cancelCalls.Add(1)
	f.cancelToken.Store(token)
	return f.cancelErr
}

var _ contracts.AppointmentUsecase = (*fakeAppointmentUsecase)(nil)

type fakePendingStore struct {
	record      *models.PendingPaymentRecord
	deleteCalls atomic.Int32
}

func (f *fakePendingStore) Save(ctx context.Context, record *models.PendingPaymentRecord) error {
	f.record = record
	return nil
}

func (f *fakePendingStore) FindByCorrelationID(ctx context.Context, correlationID string) (*models.PendingPaymentRecord, error) {
	return f.record, nil
}

func (f *fakePendingStore) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.PendingPaymentRecord, error) {
	return f.record, nil
}

func (f *fakePendingStore) DeleteByAppointmentID(ctx context.Context, appointmentID string) error {
	f.deleteCalls.Add(1)
	f.record = nil
	return nil
}

var _ contracts.PendingPaymentStore = (*fakePendingStore)(nil)

type fakeTransactionRepository struct {
	lastStatus models.TransactionStatusPayment
	updates    atomic.Int32
}

func (f *fakeTransactionRepository) Insert(ctx context.Context, transaction *models.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) UpdateStatusByAppointmentID(ctx context.Context, appointmentID string, status models.TransactionStatusPayment, gatewayCode string) error {
	f.updates.Add(1)
	f.lastStatus = status
	return nil
}

var _ contracts.TransactionRepository = (*fakeTransactionRepository)(nil)

type fakeNotificationService struct {
	events []*models.NotificationEvent
}

func (f *fakeNotificationService) Publish(ctx context.Context, event *models.NotificationEvent) error {
	f.events = append(f.events, event)
	return nil
}

var _ contracts.NotificationService = (*fakeNotificationService)(nil)

func newTestUsecase(appointments *fakeAppointmentUsecase, store *fakePendingStore, grace int) (*paymentUsecase, *fakeTransactionRepository, contracts.Scheduler) {
	transactions := &fakeTransactionRepository{}
	scheduler := NewScheduler(zap.NewNop())
	uc := &paymentUsecase{
		AppointmentUsecase:    appointments,
		PendingPaymentStore:   store,
		TransactionRepository: transactions,
		NotificationService:   &fakeNotificationService{},
		Scheduler:             scheduler,
		InternalConfig: &config.InternalConfig{
			Payment: config.Payment{
				RedirectCountdownInSecond: 5,
				CancelGraceInSecond:       grace,
			},
		},
		Log: zap.NewNop(),
	}
	return uc, transactions, scheduler
}

func TestProcessCallbackSuccess(t *testing.T) {
	record := &models.PendingPaymentRecord{
		CorrelationID:    "corr-1",
		AppointmentID:    "appt-1",
		PatientID:        "p-1",
		DoctorName:       "Dr. Tran",
		AppointmentDate:  "2025-06-02",
		AppointmentStart: "09:00",
		AppointmentEnd:   "09:30:00",
		TotalPrice:       150000,
	}

	for _, code := range []string{"0", "00", "000"} {
		t.Run("result code "+code, func(t *testing.T) {
			appointments := &fakeAppointmentUsecase{}
			store := &fakePendingStore{record: record}
			uc, transactions, scheduler := newTestUsecase(appointments, store, 3)
			defer scheduler.Stop()

			result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
				ResultCode: code,
				OrderID:    "appt-1",
				Amount:     "150000",
			})

			require.NoError(t, err)
			assert.Equal(t, string(StateSuccessConfirmed), result.State)
			assert.Equal(t, int32(1), appointments.confirmCalls.Load())
			assert.Equal(t, int32(1), appointments.statusCalls.Load())
			assert.Zero(t, appointments.cancelCalls.Load())
			assert.Equal(t, int32(1), store.deleteCalls.Load())
			assert.Equal(t, models.TransactionCompleted, transactions.lastStatus)
			assert.Equal(t, 5, result.CountdownSeconds)
			require.NotNil(t, result.Summary)
			assert.Equal(t, "Dr. Tran", result.Summary.DoctorName)
		})
	}
}

func TestProcessCallbackSuccessConfirmFailureDoesNotRegress(t *testing.T) {
	appointments := &fakeAppointmentUsecase{confirmErr: errors.New("confirm down")}
	store := &fakePendingStore{}
	uc, _, scheduler := newTestUsecase(appointments, store, 3)
	defer scheduler.Stop()

	result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "0",
		OrderID:    "appt-1",
	})

	require.NoError(t, err)
	assert.Equal(t, string(StateSuccessConfirmed), result.State)
	assert.Equal(t, int32(1), appointments.confirmCalls.Load(), "exactly one confirm attempt")
	assert.Equal(t, int32(1), appointments.statusCalls.Load(), "authoritative read still happens")
}

func TestProcessCallbackFailureSchedulesOneCancel(t *testing.T) {
	appointments := &fakeAppointmentUsecase{}
	store := &fakePendingStore{record: &models.PendingPaymentRecord{AppointmentID: "appt-1"}}
	uc, transactions, scheduler := newTestUsecase(appointments, store, 0)
	defer scheduler.Stop()

	result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "1006",
		OrderID:    "appt-1",
		Message:    "user cancelled",
	})

	require.NoError(t, err)
	assert.Equal(t, string(StateFailed), result.State)
	assert.Zero(t, appointments.confirmCalls.Load())
	assert.Equal(t, int32(1), store.deleteCalls.Load(), "pending record removed immediately")
	assert.Equal(t, models.TransactionFailed, transactions.lastStatus)

	require.Eventually(t, func() bool { return appointments.cancelCalls.Load() == 1 },
		time.Second, 5*time.Millisecond, "exactly one compensating cancel after the grace delay")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), appointments.cancelCalls.Load())
}

func TestProcessCallbackFailureCancelErrorIsSwallowed(t *testing.T) {
	appointments := &fakeAppointmentUsecase{cancelErr: errors.New("cancel down")}
	store := &fakePendingStore{}
	uc, _, scheduler := newTestUsecase(appointments, store, 0)
	defer scheduler.Stop()

	result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "49",
		OrderID:    "appt-1",
	})

	require.NoError(t, err, "cancellation failure never surfaces")
	assert.Equal(t, string(StateFailed), result.State)
	require.Eventually(t, func() bool { return appointments.cancelCalls.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestProcessCallbackMissingOrderID(t *testing.T) {
	appointments := &fakeAppointmentUsecase{}
	store := &fakePendingStore{}
	uc, transactions, scheduler := newTestUsecase(appointments, store, 3)
	defer scheduler.Stop()

	result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "0",
	})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, string(StateError), result.State)
	assert.Zero(t, appointments.confirmCalls.Load())
	assert.Zero(t, appointments.statusCalls.Load())
	assert.Zero(t, appointments.cancelCalls.Load())
	assert.Zero(t, store.deleteCalls.Load())
	assert.Zero(t, transactions.updates.Load())
}

func TestProcessCallbackMissingPendingRecordTolerated(t *testing.T) {
	appointments := &fakeAppointmentUsecase{}
	store := &fakePendingStore{}
	uc, _, scheduler := newTestUsecase(appointments, store, 3)
	defer scheduler.Stop()

	result, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "0",
		OrderID:    "appt-1",
		Amount:     "150000",
	})

	require.NoError(t, err)
	assert.Equal(t, string(StateSuccessConfirmed), result.State)
	require.NotNil(t, result.Summary)
	assert.Equal(t, "appt-1", result.Summary.AppointmentID)
	assert.Equal(t, "2025-06-02", result.Summary.AppointmentDate, "falls back to the status read")
}

func TestProcessCallbackUsesStoredBearerToken(t *testing.T) {
	t.Run("confirm and status read carry the booking credential", func(t *testing.T) {
		appointments := &fakeAppointmentUsecase{}
		store := &fakePendingStore{record: &models.PendingPaymentRecord{
			AppointmentID: "appt-1",
			BearerToken:   "booking-token",
		}}
		uc, _, scheduler := newTestUsecase(appointments, store, 3)
		defer scheduler.Stop()

		// The gateway redirect itself carries no Authorization header.
		result, err := uc.ProcessCallback(context.Background(), "", &requests.MomoCallback{
			ResultCode: "0",
			OrderID:    "appt-1",
		})

		require.NoError(t, err)
		assert.Equal(t, string(StateSuccessConfirmed), result.State)
		assert.Equal(t, "booking-token", appointments.confirmToken.Load())
		assert.Equal(t, "booking-token", appointments.statusToken.Load())
	})

	t.Run("compensating cancel carries the booking credential", func(t *testing.T) {
		appointments := &fakeAppointmentUsecase{}
		store := &fakePendingStore{record: &models.PendingPaymentRecord{
			AppointmentID: "appt-1",
			BearerToken:   "booking-token",
		}}
		uc, _, scheduler := newTestUsecase(appointments, store, 0)
		defer scheduler.Stop()

		_, err := uc.ProcessCallback(context.Background(), "", &requests.MomoCallback{
			ResultCode: "1006",
			OrderID:    "appt-1",
		})

		require.NoError(t, err)
		require.Eventually(t, func() bool { return appointments.cancelCalls.Load() == 1 },
			time.Second, 5*time.Millisecond)
		assert.Equal(t, "booking-token", appointments.cancelToken.Load())
	})
}

func TestProcessCallbackManualShortCircuit(t *testing.T) {
	appointments := &fakeAppointmentUsecase{}
	store := &fakePendingStore{}
	uc, _, scheduler := newTestUsecase(appointments, store, 3)
	defer scheduler.Stop()

	_, err := uc.ProcessCallback(context.Background(), "token", &requests.MomoCallback{
		ResultCode: "0",
		OrderID:    "appt-1",
	})
	require.NoError(t, err)

	assert.True(t, scheduler.Cancel(redirectTimerID("appt-1")), "countdown can be short-circuited")
}
