package response

import (
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardResponse struct {
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

func FromCardView(v *queries.CardView) *CardResponse {
	return copied[CardResponse](v)
}

type CardListResponse struct {
	Items      []*CardResponse `json:"items"`
	NextCursor *string         `json:"next_cursor,omitempty"`
}

func FromCardList(views []*queries.CardView, next *queries.Cursor) *CardListResponse {
	items := make([]*CardResponse, len(views))
	for i, v := range views {
		items[i] = FromCardView(v)
	}
	return &CardListResponse{Items: items, NextCursor: cursorString(next)}
}

type PunchResponse struct {
	ID         uuid.UUID `json:"id"`
	CardID     uuid.UUID `json:"card_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Quantity   int32     `json:"quantity"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type PunchListResponse struct {
	Items      []*PunchResponse `json:"items"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

func FromPunchList(views []*queries.PunchView, next *queries.Cursor) *PunchListResponse {
	items := make([]*PunchResponse, len(views))
	for i, v := range views {
		items[i] = copied[PunchResponse](v)
	}
	return &PunchListResponse{Items: items, NextCursor: cursorString(next)}
}

type CardProgressResponse struct {
	CardID      uuid.UUID  `json:"card_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	Total       int32      `json:"total"`
	Goal        int32      `json:"goal"`
	Percent     int        `json:"percent"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromCardProgressView(v *queries.CardProgressView) *CardProgressResponse {
	return copied[CardProgressResponse](v)
}
