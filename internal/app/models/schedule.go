package models

// Schedule is a doctor's working window, fetched per booking attempt from
// the appointment service and never cached.
type Schedule struct {
	ScheduleID      string  `json:"scheduleId"`
	DoctorID        string  `json:"doctorId"`
	WorkingDays     string  `json:"workingDays"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	SlotDuration    int     `json:"slotDuration"`
	ConsultationFee float64 `json:"consultationFee"`

	Appointments []Appointment `json:"appointments,omitempty"`
}

// TimeSlot is a derived value, one member of the ordered sequence generated
// from a schedule. It is never persisted.
type TimeSlot struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}
