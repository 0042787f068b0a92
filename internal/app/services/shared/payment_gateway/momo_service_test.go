package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMomoConfig(endpoint string) *config.InternalConfig {
	return &config.InternalConfig{
		Momo: config.Momo{
			PartnerCode: "PARTNER",
			AccessKey:   "access",
			SecretKey:   "secret",
			Endpoint:    endpoint,
			RedirectURL: "https://app.example/callback",
			IpnURL:      "https://app.example/ipn",
			RequestType: "captureWallet",
			Lang:        "vi",
		},
	}
}

func TestSignCreatePayment(t *testing.T) {
	cfg := testMomoConfig("")
	payload := &requests.MomoCreatePayment{
		PartnerCode: "PARTNER",
		AccessKey:   "access",
		RequestID:   "req-1",
		Amount:      "150000",
		OrderID:     "order-1",
		OrderInfo:   "Payment for appointment order-1",
		RedirectURL: "https://app.example/callback",
		IpnURL:      "https://app.example/ipn",
		ExtraData:   "",
		RequestType: "captureWallet",
	}

	signature := signCreatePayment(cfg.Momo, payload)

	raw := "accessKey=access&amount=150000&extraData=&ipnUrl=https://app.example/ipn" +
		"&orderId=order-1&orderInfo=Payment for appointment order-1&partnerCode=PARTNER" +
		"&redirectUrl=https://app.example/callback&requestId=req-1&requestType=captureWallet"
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte(raw))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
}

func TestCreatePayment(t *testing.T) {
	t.Run("returns the pay url on success", func(t *testing.T) {
		var received requests.MomoCreatePayment
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"resultCode": 0,
				"message":    "Success",
				"payUrl":     "https://pay.example/xyz",
			})
		}))
		defer server.Close()

		service := &momoService{
			HTTPClient:     server.Client(),
			Logger:         zap.NewNop(),
			InternalConfig: testMomoConfig(server.URL),
		}

		result, err := service.CreatePayment(context.Background(), "corr-1", "appt-1", "Payment for appointment appt-1", 150000)

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/xyz", result.PayURL)
		assert.Equal(t, "corr-1", received.RequestID)
		assert.Equal(t, "appt-1", received.OrderID)
		assert.Equal(t, "150000", received.Amount)
		assert.NotEmpty(t, received.Signature)
	})

	t.Run("rejects a response without a pay url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"resultCode": 41,
				"message":    "Duplicate orderId",
			})
		}))
		defer server.Close()

		service := &momoService{
			HTTPClient:     server.Client(),
			Logger:         zap.NewNop(),
			InternalConfig: testMomoConfig(server.URL),
		}

		_, err := service.CreatePayment(context.Background(), "corr-1", "appt-1", "info", 150000)

		require.Error(t, err)
	})
}
