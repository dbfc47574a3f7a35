package constvars

const (
	URLParamEmail = "email"
)

const (
	URLQueryParamDate    = "date"
	URLQueryParamPatient = "patient"
)
