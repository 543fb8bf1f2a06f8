package queries

import (
	"context"

	"github.com/google/uuid"
)

type GiftQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GiftView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*GiftView, error)
}

type GiftReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GiftView, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*GiftView, error)
}

type giftQueriesImpl struct {
	store GiftReadStore
}

func NewGiftQueries(store GiftReadStore) GiftQueries {
	return &giftQueriesImpl{store: store}
}

func (q *giftQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GiftView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *giftQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*GiftView, error) {
	return q.store.FindByBusiness(ctx, businessID)
}
