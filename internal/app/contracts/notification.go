package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type NotificationService interface {
	Publish(ctx context.Context, event *models.NotificationEvent) error
}
