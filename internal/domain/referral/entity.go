package referral

import (
	"errors"
	"strings"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrNegativeCap       = errors.New("referrer cap cannot be negative")
	ErrInvalidTransition = errors.New("invalid program status transition")
)

const MaxTitleLength = 120

// Program is a referral campaign. A referrer creates referral intents up
// to the per-referrer cap; each finalized intent credits the referrer's
// participant record exactly once.
type Program struct {
	id          uuid.UUID
	businessID  uuid.UUID
	title       string
	status      offer.Status
	window      offer.Window
	referrerCap *int32
	reward      string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProgram(businessID uuid.UUID, title string, validFrom, validUntil time.Time, referrerCap *int32, reward string) (*Program, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if referrerCap != nil && *referrerCap < 0 {
		return nil, ErrNegativeCap
	}
	window, err := offer.NewWindow(validFrom, validUntil)
	if err != nil {
		return nil, err
	}

	return &Program{
		id:          uuid.New(),
		businessID:  businessID,
		title:       title,
		status:      offer.StatusActive,
		window:      window,
		referrerCap: referrerCap,
		reward:      reward,
	}, nil
}

func ReconstructProgram(
	id, businessID uuid.UUID,
	title string,
	status offer.Status,
	window offer.Window,
	referrerCap *int32,
	reward string,
	createdAt, updatedAt time.Time,
) *Program {
	return &Program{
		id:          id,
		businessID:  businessID,
		title:       title,
		status:      status,
		window:      window,
		referrerCap: referrerCap,
		reward:      reward,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Program) ChangeStatus(next offer.Status) error {
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	return nil
}

func (p *Program) OwnedBy(businessID uuid.UUID) bool {
	return p.businessID == businessID
}

// Allowance computes the referrer's remaining quota given the count of
// their prior non-canceled intents on this program.
func (p *Program) Allowance(priorIntents int32) intent.Allowance {
	return intent.NewAllowance(p.referrerCap, priorIntents)
}

func (p *Program) OfferSpec() intent.OfferSpec {
	return intent.OfferSpec{ID: p.id, Status: p.status, Window: p.window}
}

func (p *Program) ID() uuid.UUID         { return p.id }
func (p *Program) BusinessID() uuid.UUID { return p.businessID }
func (p *Program) Title() string         { return p.title }
func (p *Program) Status() offer.Status  { return p.status }
func (p *Program) Window() offer.Window  { return p.window }
func (p *Program) ReferrerCap() *int32   { return p.referrerCap }
func (p *Program) Reward() string        { return p.reward }
func (p *Program) CreatedAt() time.Time  { return p.createdAt }
func (p *Program) UpdatedAt() time.Time  { return p.updatedAt }
