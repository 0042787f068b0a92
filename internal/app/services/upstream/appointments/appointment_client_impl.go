package appointments

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentClientInstance contracts.AppointmentClient
	onceAppointmentClient     sync.Once
)

type appointmentClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewAppointmentClient(baseURL string, httpClient *http.Client, logger *zap.Logger) contracts.AppointmentClient {
	onceAppointmentClient.Do(func() {
		appointmentClientInstance = &appointmentClient{
			BaseURL:    baseURL,
			HTTPClient: httpClient,
			Log:        logger,
		}
	})
	return appointmentClientInstance
}

func (c *appointmentClient) Create(ctx context.Context, token string, appointment *models.Appointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, appointment.ScheduleID),
	)

	requestJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/appointments/create", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("appointmentClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrAppointmentCreate(fmt.Errorf("status %d", resp.StatusCode))
	}

	created := new(models.Appointment)
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "appointment")
	}
	return created, nil
}

// ChangeStatus is idempotent upstream; confirming an already confirmed
// appointment succeeds.
func (c *appointmentClient) ChangeStatus(ctx context.Context, token, appointmentID string, status models.AppointmentStatus) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentClient.ChangeStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStateKey, string(status)),
	)

	url := fmt.Sprintf("%s/appointments/change?%s=%s&%s=%s",
		c.BaseURL, constvars.QueryParamAppID, appointmentID, constvars.QueryParamStatus, status)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("appointmentClient.ChangeStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return exceptions.ErrAppointmentConfirm(fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}

func (c *appointmentClient) FindByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	url := fmt.Sprintf("%s/appointments/%s", c.BaseURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("appointmentClient.FindByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("status %d", resp.StatusCode), "appointment")
	}

	appointment := new(models.Appointment)
	if err := json.NewDecoder(resp.Body).Decode(appointment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "appointment")
	}
	return appointment, nil
}

func (c *appointmentClient) CancelPayment(ctx context.Context, token, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentClient.CancelPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	url := fmt.Sprintf("%s/api/payment/appointment/%s/cancel", c.BaseURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("appointmentClient.CancelPayment error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return exceptions.ErrAppointmentCancel(fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}
