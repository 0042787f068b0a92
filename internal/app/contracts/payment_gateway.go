package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreatePayment(ctx context.Context, correlationID, orderID, orderInfo string, amount float64) (*responses.MomoCreatePaymentResult, error)
}
