package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReferralQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReferralProgramView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReferralProgramView, error)
	ListParticipants(ctx context.Context, programID uuid.UUID) ([]*ParticipantView, error)
}

type ReferralReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReferralProgramView, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReferralProgramView, error)
	FindParticipants(ctx context.Context, programID uuid.UUID) ([]*ParticipantView, error)
}

type referralQueriesImpl struct {
	store ReferralReadStore
}

func NewReferralQueries(store ReferralReadStore) ReferralQueries {
	return &referralQueriesImpl{store: store}
}

func (q *referralQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReferralProgramView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *referralQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReferralProgramView, error) {
	return q.store.FindByBusiness(ctx, businessID)
}

func (q *referralQueriesImpl) ListParticipants(ctx context.Context, programID uuid.UUID) ([]*ParticipantView, error) {
	return q.store.FindParticipants(ctx, programID)
}
