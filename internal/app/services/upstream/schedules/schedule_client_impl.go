package schedules

import (
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
	scheduleClientInstance contracts.ScheduleClient
	onceScheduleClient     sync.Once
)

type scheduleClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewScheduleClient(baseURL string, httpClient *http.Client, logger *zap.Logger) contracts.ScheduleClient {
	onceScheduleClient.Do(func() {
		scheduleClientInstance = &scheduleClient{
			BaseURL:    baseURL,
			HTTPClient: httpClient,
			Log:        logger,
		}
	})
	return scheduleClientInstance
}

func (c *scheduleClient) FindByDoctorID(ctx context.Context, token, doctorID string) (*models.Schedule, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("scheduleClient.FindByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	url := fmt.Sprintf("%s/schedules/by-doctor?%s=%s", c.BaseURL, constvars.QueryParamDoctorIDLC, doctorID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("scheduleClient.FindByDoctorID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("status %d", resp.StatusCode), "schedule")
	}

	schedule := new(models.Schedule)
	if err := json.NewDecoder(resp.Body).Decode(schedule); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "schedule")
	}
	return schedule, nil
}
