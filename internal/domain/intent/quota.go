package intent

// Allowance derives the remaining intent allowance from a nullable cap
// and a count of prior intents. A nil cap means unlimited; a zero cap
// means no intents are allowed at all.
type Allowance struct {
	cap  *int32
	used int32
}

func NewAllowance(cap *int32, used int32) Allowance {
	if used < 0 {
		used = 0
	}
	return Allowance{cap: cap, used: used}
}

// Remaining is nil for an unlimited cap.
func (a Allowance) Remaining() *int32 {
	if a.cap == nil {
		return nil
	}
	r := *a.cap - a.used
	if r < 0 {
		r = 0
	}
	return &r
}

func (a Allowance) ReachedCap() bool {
	return a.cap != nil && a.used >= *a.cap
}
