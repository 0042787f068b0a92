package utils

import (
	"fmt"
	"time"

	"medibook-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateCorrelationID keys one payment round-trip from redirect to
// callback. It doubles as the gateway requestId.
func GenerateCorrelationID() string {
	return uuid.New().String()
}

// GenerateInsuranceNumber is the fallback used when a profile carries no
// insurance number; the patient service requires the field to be non-empty.
func GenerateInsuranceNumber() string {
	return fmt.Sprintf("%s%d", constvars.InsuranceNumberPrefix, time.Now().UnixMilli())
}

// GenerateSyntheticPatientID marks an identity that could not be resolved
// against the patient store. The booking flow still proceeds with it.
func GenerateSyntheticPatientID() string {
	return fmt.Sprintf("%s%d", constvars.SyntheticPatientIDPrefix, time.Now().UnixMilli())
}
