package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	AvailableSlots(ctx context.Context, token, doctorID, date string) (*responses.AvailableSlotsResult, error)
}
