package response

import (
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReferralProgramResponse struct {
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

func FromReferralProgramView(v *queries.ReferralProgramView) *ReferralProgramResponse {
	return copied[ReferralProgramResponse](v)
}

func FromReferralProgramList(views []*queries.ReferralProgramView) []*ReferralProgramResponse {
	items := make([]*ReferralProgramResponse, len(views))
	for i, v := range views {
		items[i] = FromReferralProgramView(v)
	}
	return items
}

type ParticipantResponse struct {
	ID            uuid.UUID `json:"id"`
	ProgramID     uuid.UUID `json:"program_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerEmail string    `json:"customer_email"`
	Credited      int32     `json:"credited"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromParticipantList(views []*queries.ParticipantView) []*ParticipantResponse {
	items := make([]*ParticipantResponse, len(views))
	for i, v := range views {
		items[i] = copied[ParticipantResponse](v)
	}
	return items
}
