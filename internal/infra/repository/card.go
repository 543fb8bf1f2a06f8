package repository

import (
	"context"

	"engage-api/internal/domain/card"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CardRepository struct{}

func NewCardRepository() *CardRepository {
	return &CardRepository{}
}

const createCardSQL = `
INSERT INTO cards (id, business_id, title, status, valid_from, valid_until, stamps_required, reward)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *CardRepository) Create(ctx context.Context, tx db.DBTX, c *card.Card) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createCardSQL,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.BusinessID()),
		c.Title(),
		c.Status().String(),
		pgconv.TimeToPgtype(c.Window().From()),
		pgconv.TimeToPgtype(c.Window().Until()),
		c.StampsRequired(),
		c.Reward(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create card", err)
	}
	return id, nil
}

const updateCardSQL = `
UPDATE cards
SET title = $2, status = $3, valid_from = $4, valid_until = $5, stamps_required = $6, reward = $7, updated_at = now()
WHERE id = $1
`

func (r *CardRepository) Update(ctx context.Context, tx db.DBTX, c *card.Card) error {
	tag, err := tx.Exec(ctx, updateCardSQL,
		pgconv.UUIDToPgtype(c.ID()),
		c.Title(),
		c.Status().String(),
		pgconv.TimeToPgtype(c.Window().From()),
		pgconv.TimeToPgtype(c.Window().Until()),
		c.StampsRequired(),
		c.Reward(),
	)
	if err != nil {
		return wrapWriteErr("failed to update card", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("card not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cards WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete card", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("card not found", nil, infra.KindNotFound)
	}
	return nil
}
