package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Active means the booking still owns its calendar dates.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

// DateStatus is the state of one calendar row.
type DateStatus string

const (
	DateAvailable DateStatus = "available"
	DateBooked    DateStatus = "booked"
	DateBlocked   DateStatus = "blocked"
)

func (d DateStatus) String() string {
	return string(d)
}
