package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	Book(ctx context.Context, token, userID string, request *requests.CreateBooking) (*responses.BookingResult, error)
}
