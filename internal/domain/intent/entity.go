package intent

import (
	"errors"
	"time"

	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind        = errors.New("invalid intent kind")
	ErrOfferInactive      = errors.New("offer is not active")
	ErrOfferOutsideWindow = errors.New("offer is outside its validity window")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrExpiryInPast       = errors.New("expiry must be in the future")
	ErrExpired            = errors.New("intent has expired")
	ErrInvalidState       = errors.New("intent is in the wrong state for this transition")
	ErrBoundToOther       = errors.New("intent is bound to another customer")
	ErrNotCreator         = errors.New("only the intent creator may finalize a consumed intent")
)

// StateError reports the concrete status that blocked a transition.
// errors.Is(err, ErrInvalidState) matches it.
type StateError struct {
	Current Status
}

func (e *StateError) Error() string {
	return "intent is already " + e.Current.String()
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// OfferSpec is the slice of a parent offer the lifecycle engine needs.
// Each offer domain (card, referral program, gift) produces one.
type OfferSpec struct {
	ID     uuid.UUID
	Status offer.Status
	Window offer.Window
}

// Intent is a provisional, time-bounded request to redeem a reward. The
// same aggregate backs stamp punches, referral credits and gift claims;
// Kind selects the side effect applied when the intent is consumed.
type Intent struct {
	id         uuid.UUID
	kind       Kind
	offerID    uuid.UUID
	customerID *uuid.UUID
	createdBy  uuid.UUID
	status     Status
	quantity   int32
	note       string
	expiresAt  *time.Time
	consumedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time

	boundAtConsume bool
}

func NewIntent(
	spec OfferSpec,
	kind Kind,
	createdBy uuid.UUID,
	customerID *uuid.UUID,
	quantity int32,
	note string,
	expiresAt *time.Time,
	now time.Time,
) (*Intent, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if spec.Status != offer.StatusActive {
		return nil, ErrOfferInactive
	}
	if !spec.Window.Contains(now) {
		return nil, ErrOfferOutsideWindow
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	return &Intent{
		id:         uuid.New(),
		kind:       kind,
		offerID:    spec.ID,
		customerID: customerID,
		createdBy:  createdBy,
		status:     StatusPending,
		quantity:   quantity,
		note:       note,
		expiresAt:  expiresAt,
	}, nil
}

func ReconstructIntent(
	id uuid.UUID,
	kind Kind,
	offerID uuid.UUID,
	customerID *uuid.UUID,
	createdBy uuid.UUID,
	status Status,
	quantity int32,
	note string,
	expiresAt, consumedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Intent {
	return &Intent{
		id:         id,
		kind:       kind,
		offerID:    offerID,
		customerID: customerID,
		createdBy:  createdBy,
		status:     status,
		quantity:   quantity,
		note:       note,
		expiresAt:  expiresAt,
		consumedAt: consumedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (i *Intent) HasExpired(now time.Time) bool {
	return i.expiresAt != nil && now.After(*i.expiresAt)
}

// CanConsume checks the consume guards in their fixed order: expiry is
// reported before a binding mismatch because expiry is domain-visible
// while the binding is not always user-facing.
func (i *Intent) CanConsume(actorID uuid.UUID, now time.Time) error {
	if i.HasExpired(now) {
		return ErrExpired
	}
	if i.status != StatusPending {
		return &StateError{Current: i.status}
	}
	if i.customerID != nil && *i.customerID != actorID {
		return ErrBoundToOther
	}
	return nil
}

// Consume transitions the intent to consumed, stamping consumed_at and
// binding the acting customer if the intent was unbound. The persisted
// transition must additionally be conditioned on status still being
// pending (compare-and-swap); this method only mutates the aggregate.
func (i *Intent) Consume(actorID uuid.UUID, now time.Time) error {
	if err := i.CanConsume(actorID, now); err != nil {
		return err
	}
	i.status = StatusConsumed
	i.consumedAt = &now
	if i.customerID == nil {
		id := actorID
		i.customerID = &id
		i.boundAtConsume = true
	}
	return nil
}

// RevertConsume is the compensating rollback used when the ledger append
// after a successful consume fails: the intent returns to pending as if
// the consume never happened.
func (i *Intent) RevertConsume() {
	if i.status != StatusConsumed {
		return
	}
	i.status = StatusPending
	i.consumedAt = nil
	if i.boundAtConsume {
		i.customerID = nil
		i.boundAtConsume = false
	}
}

// CanFinalize reports whether the claim transition is allowed. A true
// noop return means the intent is already claimed and the caller should
// succeed without writing. Claiming straight from pending is permitted
// so a merchant can finalize without a customer-side consume step.
func (i *Intent) CanFinalize(actorID uuid.UUID) (noop bool, err error) {
	switch i.status {
	case StatusClaimed:
		return true, nil
	case StatusCanceled:
		return false, &StateError{Current: i.status}
	case StatusConsumed:
		if i.createdBy != actorID {
			return false, ErrNotCreator
		}
		return false, nil
	case StatusPending:
		return false, nil
	default:
		return false, ErrInvalidState
	}
}

func (i *Intent) Finalize(actorID uuid.UUID, now time.Time) (noop bool, err error) {
	noop, err = i.CanFinalize(actorID)
	if err != nil || noop {
		return noop, err
	}
	i.status = StatusClaimed
	i.updatedAt = now
	return false, nil
}

func (i *Intent) Cancel() error {
	if i.status.IsTerminal() {
		return &StateError{Current: i.status}
	}
	i.status = StatusCanceled
	return nil
}

func (i *Intent) ID() uuid.UUID          { return i.id }
func (i *Intent) Kind() Kind             { return i.kind }
func (i *Intent) OfferID() uuid.UUID     { return i.offerID }
func (i *Intent) CustomerID() *uuid.UUID { return i.customerID }
func (i *Intent) CreatedBy() uuid.UUID   { return i.createdBy }
func (i *Intent) Status() Status         { return i.status }
func (i *Intent) Quantity() int32        { return i.quantity }
func (i *Intent) Note() string           { return i.note }
func (i *Intent) ExpiresAt() *time.Time  { return i.expiresAt }
func (i *Intent) ConsumedAt() *time.Time { return i.consumedAt }
func (i *Intent) CreatedAt() time.Time   { return i.createdAt }
func (i *Intent) UpdatedAt() time.Time   { return i.updatedAt }
