package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// PaymentMethod tags how the requester intends to settle: in person at
// the club, or online through the payment collaborator.
type PaymentMethod string

const (
	PaymentInPerson PaymentMethod = "in_person"
	PaymentOnline   PaymentMethod = "online"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentInPerson, PaymentOnline:
		return true
	default:
		return false
	}
}
