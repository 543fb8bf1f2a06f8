package intent

type Kind string

const (
	KindStamp    Kind = "stamp"
	KindReferral Kind = "referral"
	KindGift     Kind = "gift"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStamp, KindReferral, KindGift:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusConsumed Status = "consumed"
	StatusClaimed  Status = "claimed"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConsumed, StatusClaimed, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusClaimed || s == StatusCanceled
}
