package card

import (
	"errors"
	"strings"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrInvalidGoal        = errors.New("stamps required must be at least 1")
	ErrInvalidTransition  = errors.New("invalid card status transition")
	ErrRewardTooLong      = errors.New("reward description is too long")
	ErrNotOwnedByBusiness = errors.New("card does not belong to this business")
)

const (
	MaxTitleLength  = 120
	MaxRewardLength = 500
)

// Card is a stamp-card offer: a customer collects punches until the goal
// is reached, then the reward can be redeemed through a stamp intent.
type Card struct {
	id             uuid.UUID
	businessID     uuid.UUID
	title          string
	status         offer.Status
	window         offer.Window
	stampsRequired int32
	reward         string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCard(businessID uuid.UUID, title string, validFrom, validUntil time.Time, stampsRequired int32, reward string) (*Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(reward) > MaxRewardLength {
		return nil, ErrRewardTooLong
	}
	// Zero or negative goals are rejected here; the progress view still
	// clamps defensively for rows that predate this check.
	if stampsRequired < 1 {
		return nil, ErrInvalidGoal
	}
	window, err := offer.NewWindow(validFrom, validUntil)
	if err != nil {
		return nil, err
	}

	return &Card{
		id:             uuid.New(),
		businessID:     businessID,
		title:          title,
		status:         offer.StatusActive,
		window:         window,
		stampsRequired: stampsRequired,
		reward:         reward,
	}, nil
}

func ReconstructCard(
	id, businessID uuid.UUID,
	title string,
	status offer.Status,
	window offer.Window,
	stampsRequired int32,
	reward string,
	createdAt, updatedAt time.Time,
) *Card {
	return &Card{
		id:             id,
		businessID:     businessID,
		title:          title,
		status:         status,
		window:         window,
		stampsRequired: stampsRequired,
		reward:         reward,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ChangeStatus applies an owner-controlled status transition.
func (c *Card) ChangeStatus(next offer.Status) error {
	if !c.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	c.status = next
	return nil
}

func (c *Card) OwnedBy(businessID uuid.UUID) bool {
	return c.businessID == businessID
}

// OfferSpec adapts the card for the shared intent lifecycle engine.
func (c *Card) OfferSpec() intent.OfferSpec {
	return intent.OfferSpec{ID: c.id, Status: c.status, Window: c.window}
}

func (c *Card) ID() uuid.UUID         { return c.id }
func (c *Card) BusinessID() uuid.UUID { return c.businessID }
func (c *Card) Title() string         { return c.title }
func (c *Card) Status() offer.Status  { return c.status }
func (c *Card) Window() offer.Window  { return c.window }
func (c *Card) StampsRequired() int32 { return c.stampsRequired }
func (c *Card) Reward() string        { return c.reward }
func (c *Card) CreatedAt() time.Time  { return c.createdAt }
func (c *Card) UpdatedAt() time.Time  { return c.updatedAt }
