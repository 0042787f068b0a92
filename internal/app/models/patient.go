package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Patient is owned by the patient service; the booking core only ever reads
// or lazily creates it, never deletes it.
type Patient struct {
	PatientID    string `json:"patientId"`
	UserID       string `json:"userId"`
	FullName     string `json:"fullName"`
	Gender       Gender `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	Address      string `json:"address"`
	District     string `json:"district"`
	City         string `json:"city"`
	InsuranceNum string `json:"insuranceNum"`
}

// ResolvedPatient tags whether the identity came from the patient store or
// was synthesized locally after the store could not be reached. Callers that
// care about data integrity can tell the two apart.
type ResolvedPatient struct {
	PatientID   string
	Synthesized bool
}
