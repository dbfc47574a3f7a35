package constvars

const (
	MongoCollectionServices = "services"
	MongoCollectionBookings = "bookings"
	MongoCollectionUsers    = "users"
	MongoCollectionDoctors  = "doctors"
)

const (
	MongoIndexBookingUniqueKey   = "uniq_treatment_date_patient"
	MongoIndexUserEmailUniqueKey = "uniq_email"
)
