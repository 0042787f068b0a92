package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type momoService struct {
	HTTPClient     *http.Client
	Logger         *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMomoService(httpClient *http.Client, logger *zap.Logger, internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &momoService{
		HTTPClient:     httpClient,
		Logger:         logger,
		InternalConfig: internalConfig,
	}
}

func (s *momoService) CreatePayment(ctx context.Context, correlationID, orderID, orderInfo string, amount float64) (*responses.MomoCreatePaymentResult, error) {
	requestID := utils.GetRequestID(ctx)
	s.Logger.Info("momoService.CreatePayment",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCorrelationIDKey, correlationID),
		zap.String("order_id", orderID),
	)

	momo := s.InternalConfig.Momo
	amountStr := strconv.FormatInt(int64(amount), 10)

	payload := &requests.MomoCreatePayment{
		PartnerCode: momo.PartnerCode,
		AccessKey:   momo.AccessKey,
		RequestID:   correlationID,
		Amount:      amountStr,
		OrderID:     orderID,
		OrderInfo:   orderInfo,
		RedirectURL: momo.RedirectURL,
		IpnURL:      momo.IpnURL,
		ExtraData:   "",
		RequestType: momo.RequestType,
		Lang:        momo.Lang,
	}
	payload.Signature = signCreatePayment(momo, payload)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, momo.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	result := new(responses.MomoCreatePaymentResult)
	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "momo")
	}

	if response.StatusCode >= constvars.StatusBadRequest || result.PayURL == "" {
		s.Logger.Error("momoService.CreatePayment rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("gateway_result_code", result.ResultCode),
			zap.String("gateway_message", result.Message),
		)
		return nil, exceptions.ErrPaymentGateway(fmt.Errorf("resultCode=%d message=%s", result.ResultCode, result.Message))
	}

	return result, nil
}

// signCreatePayment builds the HMAC-SHA256 hex signature over the gateway's
// canonical key ordering. The field order is fixed by the gateway contract
// and must not change.
func signCreatePayment(momo config.Momo, payload *requests.MomoCreatePayment) string {
	rawSignature := fmt.Sprintf(
		"accessKey=%s&amount=%s&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		payload.AccessKey,
		payload.Amount,
		payload.ExtraData,
		payload.IpnURL,
		payload.OrderID,
		payload.OrderInfo,
		payload.PartnerCode,
		payload.RedirectURL,
		payload.RequestID,
		payload.RequestType,
	)

	mac := hmac.New(sha256.New, []byte(momo.SecretKey))
	mac.Write([]byte(rawSignature))
	return hex.EncodeToString(mac.Sum(nil))
}
