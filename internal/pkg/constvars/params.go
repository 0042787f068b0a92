package constvars

const (
	URLParamDoctorID      = "doctorID"
	URLParamAppointmentID = "appointmentID"

	QueryParamDate       = "date"
	QueryParamResultCode = "resultCode"
	QueryParamOrderID    = "orderId"
	QueryParamAmount     = "amount"
	QueryParamMessage    = "message"
	QueryParamStatus     = "status"
	QueryParamAppID      = "appId"
	QueryParamDoctorIDLC = "doctorId"
)

const (
	AppointmentStatusConfirmedParam = "CONFIRMED"
)
