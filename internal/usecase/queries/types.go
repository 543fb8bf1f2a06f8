package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CardView struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until"`
	StampsRequired int32     `json:"stamps_required"`
	Reward         string    `json:"reward"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PunchView struct {
	ID         uuid.UUID `json:"id"`
	CardID     uuid.UUID `json:"card_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Quantity   int32     `json:"quantity"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardProgressView is the aggregation of a customer's punches on a card.
type CardProgressView struct {
	CardID      uuid.UUID  `json:"card_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	Total       int32      `json:"total"`
	Goal        int32      `json:"goal"`
	Percent     int        `json:"percent"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type IntentView struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	OfferID    uuid.UUID  `json:"offer_id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	CreatedBy  uuid.UUID  `json:"created_by"`
	Status     string     `json:"status"`
	Quantity   int32      `json:"quantity"`
	Note       *string    `json:"note,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type ReferralProgramView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
	ReferrerCap *int32    `json:"referrer_cap,omitempty"`
	Reward      string    `json:"reward"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ParticipantView struct {
	ID            uuid.UUID `json:"id"`
	ProgramID     uuid.UUID `json:"program_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerEmail string    `json:"customer_email"`
	Credited      int32     `json:"credited"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type GiftView struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until"`
	PerCustomerCap *int32    `json:"per_customer_cap,omitempty"`
	TotalCap       *int32    `json:"total_cap,omitempty"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SurveyView struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Question   string    `json:"question"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SurveyResponseView struct {
	ID         uuid.UUID `json:"id"`
	SurveyID   uuid.UUID `json:"survey_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type SurveyResultView struct {
	SurveyID      uuid.UUID `json:"survey_id"`
	ResponseCount int64     `json:"response_count"`
	AverageRating float64   `json:"average_rating"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	IsActive   bool       `json:"is_active"`
}
