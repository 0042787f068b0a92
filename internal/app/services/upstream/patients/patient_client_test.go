package patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string, httpClient *http.Client) *patientClient {
	return &patientClient{
		BaseURL:    serverURL,
		HTTPClient: httpClient,
		Log:        zap.NewNop(),
	}
}

func TestPatientClientFindByUserID(t *testing.T) {
	t.Run("decodes an existing patient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/by-userId/user-1", r.URL.Path)
			json.NewEncoder(w).Encode(models.Patient{PatientID: "p-1", UserID: "user-1"})
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.Client())

		patient, err := client.FindByUserID(context.Background(), "tok", "user-1")

		require.NoError(t, err)
		assert.Equal(t, "p-1", patient.PatientID)
	})

	t.Run("signals an explicit miss on 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.Client())

		_, err := client.FindByUserID(context.Background(), "tok", "user-1")

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("server failure is not a miss", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL, server.Client())

		_, err := client.FindByUserID(context.Background(), "tok", "user-1")

		require.Error(t, err)
		assert.False(t, exceptions.IsNotFound(err))
	})
}

func TestPatientClientCreate(t *testing.T) {
	var fields map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients/user-1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		fields = make(map[string]string)
		for key, values := range r.MultipartForm.Value {
			fields[key] = values[0]
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Patient{PatientID: "p-2", UserID: "user-1"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.Client())

	created, err := client.Create(context.Background(), "tok", "user-1", &models.Patient{
		FullName:     "Nguyen Van A",
		Gender:       models.GenderOther,
		DateOfBirth:  "1990-01-15",
		InsuranceNum: "BH1749000000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "p-2", created.PatientID)
	assert.Equal(t, "Nguyen Van A", fields["fullName"])
	assert.Equal(t, "OTHER", fields["gender"])
	assert.Equal(t, "BH1749000000000", fields["insuranceNum"])
}
