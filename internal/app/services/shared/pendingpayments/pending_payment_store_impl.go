package pendingpayments

import (
	"context"
	"fmt"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	correlationKeyFormat = "pending_payment:correlation:%s"
	appointmentKeyFormat = "pending_payment:appointment:%s"
)

type pendingPaymentStore struct {
	RedisRepository contracts.RedisRepository
	Logger          *zap.Logger
	TTL             time.Duration
}

// NewPendingPaymentStore builds a redis-backed store. Records are written
// under both the correlation id and the appointment id so the callback can
// look them up by whichever reference the gateway echoes back. Both keys
// expire together; an expired record reads as absent.
func NewPendingPaymentStore(
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.PendingPaymentStore {
	return &pendingPaymentStore{
		RedisRepository: redisRepository,
		Logger:          logger,
		TTL:             time.Duration(internalConfig.Payment.PendingTTLInMinute) * time.Minute,
	}
}

func (s *pendingPaymentStore) Save(ctx context.Context, record *models.PendingPaymentRecord) error {
	if record.CreatedAtUnixMs == 0 {
		record.CreatedAtUnixMs = time.Now().UnixMilli()
	}

	correlationKey := fmt.Sprintf(correlationKeyFormat, record.CorrelationID)
	if err := s.RedisRepository.Set(ctx, correlationKey, record, s.TTL); err != nil {
		return err
	}

	appointmentKey := fmt.Sprintf(appointmentKeyFormat, record.AppointmentID)
	if err := s.RedisRepository.Set(ctx, appointmentKey, record, s.TTL); err != nil {
		return err
	}

	s.Logger.Info("Pending payment record saved",
		zap.String(constvars.LoggingCorrelationIDKey, record.CorrelationID),
		zap.String(constvars.LoggingAppointmentIDKey, record.AppointmentID),
	)
	return nil
}

func (s *pendingPaymentStore) FindByCorrelationID(ctx context.Context, correlationID string) (*models.PendingPaymentRecord, error) {
	return s.find(ctx, fmt.Sprintf(correlationKeyFormat, correlationID))
}

func (s *pendingPaymentStore) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.PendingPaymentRecord, error) {
	return s.find(ctx, fmt.Sprintf(appointmentKeyFormat, appointmentID))
}

func (s *pendingPaymentStore) DeleteByAppointmentID(ctx context.Context, appointmentID string) error {
	record, err := s.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if record != nil {
		if err := s.RedisRepository.Delete(ctx, fmt.Sprintf(correlationKeyFormat, record.CorrelationID)); err != nil {
			return err
		}
	}
	return s.RedisRepository.Delete(ctx, fmt.Sprintf(appointmentKeyFormat, appointmentID))
}

func (s *pendingPaymentStore) find(ctx context.Context, key string) (*models.PendingPaymentRecord, error) {
	data, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	record := new(models.PendingPaymentRecord)
	if err := json.Unmarshal([]byte(data), record); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return record, nil
}
