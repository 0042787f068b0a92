package patients

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
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
	patientClientInstance contracts.PatientClient
	oncePatientClient     sync.Once
)

type patientClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPatientClient(baseURL string, httpClient *http.Client, logger *zap.Logger) contracts.PatientClient {
	oncePatientClient.Do(func() {
		patientClientInstance = &patientClient{
			BaseURL:    baseURL,
			HTTPClient: httpClient,
			Log:        logger,
		}
	})
	return patientClientInstance
}

func (c *patientClient) FindByUserID(ctx context.Context, token, userID string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientClient.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	url := fmt.Sprintf("%s/api/patients/by-userId/%s", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientClient.FindByUserID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("status %d", resp.StatusCode), "patient")
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "patient")
	}
	return patient, nil
}

func (c *patientClient) Create(ctx context.Context, token, userID string, patient *models.Patient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"fullName":     patient.FullName,
		"gender":       string(patient.Gender),
		"dateOfBirth":  patient.DateOfBirth,
		"address":      patient.Address,
		"district":     patient.District,
		"city":         patient.City,
		"insuranceNum": patient.InsuranceNum,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	url := fmt.Sprintf("%s/api/patients/%s", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("status %d", resp.StatusCode), "patient")
	}

	created := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "patient")
	}
	return created, nil
}
