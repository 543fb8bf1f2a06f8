package response

import (
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type IntentResponse struct {
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

func FromIntentView(v *queries.IntentView) *IntentResponse {
	return copied[IntentResponse](v)
}

type IntentListResponse struct {
	Items      []*IntentResponse `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

func FromIntentList(views []*queries.IntentView, next *queries.Cursor) *IntentListResponse {
	items := make([]*IntentResponse, len(views))
	for i, v := range views {
		items[i] = FromIntentView(v)
	}
	return &IntentListResponse{Items: items, NextCursor: cursorString(next)}
}

type FinalizeIntentResponse struct {
	AlreadyClaimed bool            `json:"already_claimed"`
	Intent         *IntentResponse `json:"intent"`
}
