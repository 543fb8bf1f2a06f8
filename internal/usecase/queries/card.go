package queries

import (
	"context"
	"time"

	"engage-api/internal/domain/card"

	"github.com/google/uuid"
)

type CardQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CardView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, after *Cursor, limit int) ([]*CardView, *Cursor, error)
	ListPunches(ctx context.Context, cardID uuid.UUID, after *Cursor, limit int) ([]*PunchView, *Cursor, error)
	Progress(ctx context.Context, cardID, customerID uuid.UUID) (*CardProgressView, error)
}

type CardReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CardView, error)
	FindByBusinessFirstPage(ctx context.Context, businessID uuid.UUID, limit int32) ([]*CardView, error)
	FindByBusinessKeyset(ctx context.Context, businessID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CardView, error)
	FindPunchesFirstPage(ctx context.Context, cardID uuid.UUID, limit int32) ([]*PunchView, error)
	FindPunchesKeyset(ctx context.Context, cardID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PunchView, error)
	FindPunchesByCardAndCustomer(ctx context.Context, cardID, customerID uuid.UUID) ([]card.PunchRecord, error)
}

type cardQueriesImpl struct {
	store CardReadStore
}

func NewCardQueries(store CardReadStore) CardQueries {
	return &cardQueriesImpl{store: store}
}

func (q *cardQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CardView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *cardQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID, after *Cursor, limit int) ([]*CardView, *Cursor, error) {
	limit32 := int32(ValidateLimit(limit))

	var (
		rows []*CardView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.store.FindByBusinessFirstPage(ctx, businessID, limit32)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.store.FindByBusinessKeyset(ctx, businessID, lastCreatedAt, lastID, limit32)
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

func (q *cardQueriesImpl) ListPunches(ctx context.Context, cardID uuid.UUID, after *Cursor, limit int) ([]*PunchView, *Cursor, error) {
	limit32 := int32(ValidateLimit(limit))

	var (
		rows []*PunchView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.store.FindPunchesFirstPage(ctx, cardID, limit32)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.store.FindPunchesKeyset(ctx, cardID, lastCreatedAt, lastID, limit32)
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

// Progress folds the customer's punch ledger through the domain
// aggregation so read side and write side share one formula.
func (q *cardQueriesImpl) Progress(ctx context.Context, cardID, customerID uuid.UUID) (*CardProgressView, error) {
	cardView, err := q.store.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	punches, err := q.store.FindPunchesByCardAndCustomer(ctx, cardID, customerID)
	if err != nil {
		return nil, err
	}

	progress := card.ComputeProgress(cardView.StampsRequired, punches)
	return &CardProgressView{
		CardID:      cardID,
		CustomerID:  customerID,
		Total:       progress.Total,
		Goal:        progress.Goal,
		Percent:     progress.Percent,
		Completed:   progress.Completed,
		CompletedAt: progress.CompletedAt,
	}, nil
}
