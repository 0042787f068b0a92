package requests

type CreateBooking struct {
	DoctorID        string  `json:"doctorId" validate:"required"`
	DoctorName      string  `json:"doctorName"`
	PatientName     string  `json:"patientName" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Gender          string  `json:"gender" validate:"omitempty,gender"`
	DateOfBirth     string  `json:"dateOfBirth" validate:"required,booking_date"`
	Address         string  `json:"address"`
	District        string  `json:"district"`
	City            string  `json:"city"`
	InsuranceNum    string  `json:"insuranceNum"`
	AppointmentDate string  `json:"appointmentDate" validate:"required,booking_date"`
	AppointmentTime string  `json:"appointmentTime" validate:"required,clock"`
	Reason          string  `json:"reason"`
	TotalPrice      float64 `json:"totalPrice" validate:"gte=0"`
}
