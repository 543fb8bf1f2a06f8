package response

import (
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GiftResponse struct {
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

func FromGiftView(v *queries.GiftView) *GiftResponse {
	return copied[GiftResponse](v)
}

func FromGiftList(views []*queries.GiftView) []*GiftResponse {
	items := make([]*GiftResponse, len(views))
	for i, v := range views {
		items[i] = FromGiftView(v)
	}
	return items
}
