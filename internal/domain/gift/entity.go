package gift

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
	ErrNegativeCap       = errors.New("cap cannot be negative")
	ErrInvalidTransition = errors.New("invalid gift status transition")
)

const MaxTitleLength = 120

// Gift is a reward campaign customers can claim through gift intents,
// limited by an optional per-customer cap and an optional total cap.
type Gift struct {
	id             uuid.UUID
	businessID     uuid.UUID
	title          string
	status         offer.Status
	window         offer.Window
	perCustomerCap *int32
	totalCap       *int32
	description    string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewGift(businessID uuid.UUID, title string, validFrom, validUntil time.Time, perCustomerCap, totalCap *int32, description string) (*Gift, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if (perCustomerCap != nil && *perCustomerCap < 0) || (totalCap != nil && *totalCap < 0) {
		return nil, ErrNegativeCap
	}
	window, err := offer.NewWindow(validFrom, validUntil)
	if err != nil {
		return nil, err
	}

	return &Gift{
		id:             uuid.New(),
		businessID:     businessID,
		title:          title,
		status:         offer.StatusActive,
		window:         window,
		perCustomerCap: perCustomerCap,
		totalCap:       totalCap,
		description:    description,
	}, nil
}

func ReconstructGift(
	id, businessID uuid.UUID,
	title string,
	status offer.Status,
	window offer.Window,
	perCustomerCap, totalCap *int32,
	description string,
	createdAt, updatedAt time.Time,
) *Gift {
	return &Gift{
		id:             id,
		businessID:     businessID,
		title:          title,
		status:         status,
		window:         window,
		perCustomerCap: perCustomerCap,
		totalCap:       totalCap,
		description:    description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (g *Gift) ChangeStatus(next offer.Status) error {
	if !g.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	g.status = next
	return nil
}

func (g *Gift) OwnedBy(businessID uuid.UUID) bool {
	return g.businessID == businessID
}

func (g *Gift) CustomerAllowance(priorIntents int32) intent.Allowance {
	return intent.NewAllowance(g.perCustomerCap, priorIntents)
}

func (g *Gift) TotalAllowance(allIntents int32) intent.Allowance {
	return intent.NewAllowance(g.totalCap, allIntents)
}

func (g *Gift) OfferSpec() intent.OfferSpec {
	return intent.OfferSpec{ID: g.id, Status: g.status, Window: g.window}
}

func (g *Gift) ID() uuid.UUID          { return g.id }
func (g *Gift) BusinessID() uuid.UUID  { return g.businessID }
func (g *Gift) Title() string          { return g.title }
func (g *Gift) Status() offer.Status   { return g.status }
func (g *Gift) Window() offer.Window   { return g.window }
func (g *Gift) PerCustomerCap() *int32 { return g.perCustomerCap }
func (g *Gift) TotalCap() *int32       { return g.totalCap }
func (g *Gift) Description() string    { return g.description }
func (g *Gift) CreatedAt() time.Time   { return g.createdAt }
func (g *Gift) UpdatedAt() time.Time   { return g.updatedAt }
