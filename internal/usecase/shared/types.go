package shared

import (
	"time"

	"engage-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller identity, passed explicitly into
// every command instead of being looked up ambiently.
type Actor struct {
	ID         uuid.UUID
	Role       user.Role
	BusinessID *uuid.UUID
}

func (a Actor) OwnsBusiness(businessID uuid.UUID) bool {
	if a.Role == user.RoleAdmin {
		return true
	}
	return a.Role == user.RoleOwner && a.BusinessID != nil && *a.BusinessID == businessID
}

// Write-side snapshots prevent dependency on read-side query types.

type CardSnapshot struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Title          string
	Status         string
	ValidFrom      time.Time
	ValidUntil     time.Time
	StampsRequired int32
	Reward         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReferralProgramSnapshot struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Title       string
	Status      string
	ValidFrom   time.Time
	ValidUntil  time.Time
	ReferrerCap *int32
	Reward      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GiftSnapshot struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Title          string
	Status         string
	ValidFrom      time.Time
	ValidUntil     time.Time
	PerCustomerCap *int32
	TotalCap       *int32
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SurveySnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Title      string
	Status     string
	Question   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type IntentSnapshot struct {
	ID         uuid.UUID
	Kind       string
	OfferID    uuid.UUID
	CustomerID *uuid.UUID
	CreatedBy  uuid.UUID
	Status     string
	Quantity   int32
	Note       string
	ExpiresAt  *time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ParticipantSnapshot struct {
	ID         uuid.UUID
	ProgramID  uuid.UUID
	CustomerID uuid.UUID
	Credited   int32
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
