package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type IntentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*IntentView, error)
	ListByOffer(ctx context.Context, offerID uuid.UUID, after *Cursor, limit int) ([]*IntentView, *Cursor, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, after *Cursor, limit int) ([]*IntentView, *Cursor, error)
}

type IntentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IntentView, error)
	FindByOfferFirstPage(ctx context.Context, offerID uuid.UUID, limit int32) ([]*IntentView, error)
	FindByOfferKeyset(ctx context.Context, offerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*IntentView, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*IntentView, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*IntentView, error)
}

type intentQueriesImpl struct {
	store IntentReadStore
}

func NewIntentQueries(store IntentReadStore) IntentQueries {
	return &intentQueriesImpl{store: store}
}

func (q *intentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*IntentView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *intentQueriesImpl) ListByOffer(ctx context.Context, offerID uuid.UUID, after *Cursor, limit int) ([]*IntentView, *Cursor, error) {
	return q.list(ctx, after, limit,
		func(limit int32) ([]*IntentView, error) {
			return q.store.FindByOfferFirstPage(ctx, offerID, limit)
		},
		func(t time.Time, id uuid.UUID, limit int32) ([]*IntentView, error) {
			return q.store.FindByOfferKeyset(ctx, offerID, t, id, limit)
		},
	)
}

func (q *intentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, after *Cursor, limit int) ([]*IntentView, *Cursor, error) {
	return q.list(ctx, after, limit,
		func(limit int32) ([]*IntentView, error) {
			return q.store.FindByCustomerFirstPage(ctx, customerID, limit)
		},
		func(t time.Time, id uuid.UUID, limit int32) ([]*IntentView, error) {
			return q.store.FindByCustomerKeyset(ctx, customerID, t, id, limit)
		},
	)
}

func (q *intentQueriesImpl) list(
	_ context.Context,
	after *Cursor,
	limit int,
	firstPage func(int32) ([]*IntentView, error),
	keyset func(time.Time, uuid.UUID, int32) ([]*IntentView, error),
) ([]*IntentView, *Cursor, error) {
	limit32 := int32(ValidateLimit(limit))

	var (
		rows []*IntentView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = firstPage(limit32)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = keyset(lastCreatedAt, lastID, limit32)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == int(limit32) {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
