package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	ProcessCallback(ctx context.Context, token string, callback *requests.MomoCallback) (*responses.PaymentCallbackResult, error)
}
