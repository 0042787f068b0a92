package pendingpayments

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

var _ contracts.RedisRepository = (*fakeRedisRepository)(nil)

func newTestStore(redisRepo contracts.RedisRepository) *pendingPaymentStore {
	return &pendingPaymentStore{
		RedisRepository: redisRepo,
		Logger:          zap.NewNop(),
		TTL:             30 * time.Minute,
	}
}

func testRecord() *models.PendingPaymentRecord {
	return &models.PendingPaymentRecord{
		CorrelationID:    "corr-1",
		AppointmentID:    "appt-1",
		PatientID:        "p-1",
		DoctorName:       "Dr. Tran",
		AppointmentDate:  "2025-06-02",
		AppointmentStart: "09:00",
		AppointmentEnd:   "09:30:00",
		TotalPrice:       150000,
		BearerToken:      "booking-token",
	}
}

func TestPendingPaymentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips by both keys with the configured TTL", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		store := newTestStore(redisRepo)

		require.NoError(t, store.Save(ctx, testRecord()))

		byCorrelation, err := store.FindByCorrelationID(ctx, "corr-1")
		require.NoError(t, err)
		require.NotNil(t, byCorrelation)
		assert.Equal(t, "appt-1", byCorrelation.AppointmentID)

		byAppointment, err := store.FindByAppointmentID(ctx, "appt-1")
		require.NoError(t, err)
		require.NotNil(t, byAppointment)
		assert.Equal(t, "corr-1", byAppointment.CorrelationID)
		assert.Equal(t, "booking-token", byAppointment.BearerToken)

		for _, ttl := range redisRepo.ttls {
			assert.Equal(t, 30*time.Minute, ttl)
		}
		assert.NotZero(t, byCorrelation.CreatedAtUnixMs)
	})

	t.Run("missing record reads as absent, not as an error", func(t *testing.T) {
		store := newTestStore(newFakeRedisRepository())

		record, err := store.FindByAppointmentID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("delete removes both keys", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		store := newTestStore(redisRepo)
		require.NoError(t, store.Save(ctx, testRecord()))

		require.NoError(t, store.DeleteByAppointmentID(ctx, "appt-1"))

		assert.Empty(t, redisRepo.data)

		record, err := store.FindByCorrelationID(ctx, "corr-1")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("deleting an absent record is a no-op", func(t *testing.T) {
		store := newTestStore(newFakeRedisRepository())
		require.NoError(t, store.DeleteByAppointmentID(ctx, "nope"))
	})
}
