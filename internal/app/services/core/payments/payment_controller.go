package payments

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

// MomoCallback is the redirect target the gateway sends the user back to
// after the payment attempt.
func (ctrl *PaymentController) MomoCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	callback := &requests.MomoCallback{
		ResultCode: query.Get(constvars.QueryParamResultCode),
		OrderID:    query.Get(constvars.QueryParamOrderID),
		Amount:     query.Get(constvars.QueryParamAmount),
		Message:    query.Get(constvars.QueryParamMessage),
	}

	token := utils.GetBearerToken(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.ProcessCallback(ctx, token, callback)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProcessPaymentCallbackMessage, response)
}
