package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type ScheduleClient interface {
	FindByDoctorID(ctx context.Context, token, doctorID string) (*models.Schedule, error)
}
