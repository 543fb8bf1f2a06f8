package repository

import (
	"context"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IntentRepository struct{}

func NewIntentRepository() *IntentRepository {
	return &IntentRepository{}
}

const createIntentSQL = `
INSERT INTO intents (id, kind, offer_id, customer_id, created_by, status, quantity, note, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *IntentRepository) Create(ctx context.Context, tx db.DBTX, it *intent.Intent) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createIntentSQL,
		pgconv.UUIDToPgtype(it.ID()),
		it.Kind().String(),
		pgconv.UUIDToPgtype(it.OfferID()),
		pgconv.UUIDPtrToPgtype(it.CustomerID()),
		pgconv.UUIDToPgtype(it.CreatedBy()),
		it.Status().String(),
		it.Quantity(),
		it.Note(),
		pgconv.TimePtrToPgtype(it.ExpiresAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create intent", err)
	}
	return id, nil
}

// The binding condition rides in the statement so an intent bound to a
// different customer can never be consumed, even on a stale read.
const consumeIntentSQL = `
UPDATE intents
SET status = 'consumed', customer_id = $2, consumed_at = $3, updated_at = now()
WHERE id = $1
  AND status = 'pending'
  AND (customer_id IS NULL OR customer_id = $2)
`

func (r *IntentRepository) ConsumeCAS(ctx context.Context, tx db.DBTX, id, customerID uuid.UUID, consumedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, consumeIntentSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(customerID),
		pgconv.TimeToPgtype(consumedAt),
	)
	if err != nil {
		return 0, wrapWriteErr("failed to consume intent", err)
	}
	return tag.RowsAffected(), nil
}

const revertConsumeSQL = `
UPDATE intents
SET status = 'pending',
    consumed_at = NULL,
    customer_id = CASE WHEN $2 THEN NULL ELSE customer_id END,
    updated_at = now()
WHERE id = $1 AND status = 'consumed'
`

func (r *IntentRepository) RevertConsume(ctx context.Context, tx db.DBTX, id uuid.UUID, unbind bool) error {
	if _, err := tx.Exec(ctx, revertConsumeSQL, pgconv.UUIDToPgtype(id), unbind); err != nil {
		return wrapWriteErr("failed to revert consumed intent", err)
	}
	return nil
}

const finalizeIntentSQL = `
UPDATE intents
SET status = 'claimed', updated_at = now()
WHERE id = $1 AND status IN ('pending', 'consumed')
`

func (r *IntentRepository) FinalizeCAS(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, finalizeIntentSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, wrapWriteErr("failed to finalize intent", err)
	}
	return tag.RowsAffected(), nil
}

const cancelIntentSQL = `
UPDATE intents
SET status = 'canceled', updated_at = now()
WHERE id = $1 AND status IN ('pending', 'consumed')
`

func (r *IntentRepository) CancelCAS(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, cancelIntentSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, wrapWriteErr("failed to cancel intent", err)
	}
	return tag.RowsAffected(), nil
}
