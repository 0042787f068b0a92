package appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string, httpClient *http.Client) *appointmentClient {
	return &appointmentClient{
		BaseURL:    serverURL,
		HTTPClient: httpClient,
		Log:        zap.NewNop(),
	}
}

func TestAppointmentClientCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/create", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var received models.Appointment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.AppointmentID = "appt-9"

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	created, err := client.Create(context.Background(), "tok", &models.Appointment{
		ScheduleID:       "sched-1",
		PatientID:        "p-1",
		Status:           models.AppointmentStatusPending,
		AppointmentStart: "09:00",
		AppointmentEnd:   "09:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "appt-9", created.AppointmentID)
	assert.Equal(t, models.AppointmentStatusPending, created.Status)
}

func TestAppointmentClientChangeStatus(t *testing.T) {
	var method, appID, status string
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		method = r.Method
		appID = r.URL.Query().Get("appId")
		status = r.URL.Query().Get("status")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	err := client.ChangeStatus(context.Background(), "tok", "appt-1", models.AppointmentStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "appt-1", appID)
	assert.Equal(t, "CONFIRMED", status)
}

func TestAppointmentClientChangeStatusRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	err := client.ChangeStatus(context.Background(), "tok", "appt-1", models.AppointmentStatusConfirmed)

	require.Error(t, err)
}

func TestAppointmentClientCancelPayment(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	err := client.CancelPayment(context.Background(), "tok", "appt-1")

	require.NoError(t, err)
	assert.Equal(t, "/api/payment/appointment/appt-1/cancel", path)
}

func TestAppointmentClientFindByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/appt-1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Appointment{
			AppointmentID: "appt-1",
			Status:        models.AppointmentStatusConfirmed,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	appointment, err := client.FindByID(context.Background(), "tok", "appt-1")

	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, appointment.Status)
}
