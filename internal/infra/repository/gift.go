package repository

import (
	"context"

	"engage-api/internal/domain/gift"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GiftRepository struct{}

func NewGiftRepository() *GiftRepository {
	return &GiftRepository{}
}

const createGiftSQL = `
INSERT INTO gifts (id, business_id, title, status, valid_from, valid_until, per_customer_cap, total_cap, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *GiftRepository) Create(ctx context.Context, tx db.DBTX, g *gift.Gift) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createGiftSQL,
		pgconv.UUIDToPgtype(g.ID()),
		pgconv.UUIDToPgtype(g.BusinessID()),
		g.Title(),
		g.Status().String(),
		pgconv.TimeToPgtype(g.Window().From()),
		pgconv.TimeToPgtype(g.Window().Until()),
		pgconv.Int32PtrToPgtype(g.PerCustomerCap()),
		pgconv.Int32PtrToPgtype(g.TotalCap()),
		g.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create gift", err)
	}
	return id, nil
}

const updateGiftSQL = `
UPDATE gifts
SET title = $2, status = $3, valid_from = $4, valid_until = $5, per_customer_cap = $6, total_cap = $7, description = $8, updated_at = now()
WHERE id = $1
`

func (r *GiftRepository) Update(ctx context.Context, tx db.DBTX, g *gift.Gift) error {
	tag, err := tx.Exec(ctx, updateGiftSQL,
		pgconv.UUIDToPgtype(g.ID()),
		g.Title(),
		g.Status().String(),
		pgconv.TimeToPgtype(g.Window().From()),
		pgconv.TimeToPgtype(g.Window().Until()),
		pgconv.Int32PtrToPgtype(g.PerCustomerCap()),
		pgconv.Int32PtrToPgtype(g.TotalCap()),
		g.Description(),
	)
	if err != nil {
		return wrapWriteErr("failed to update gift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gift not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GiftRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM gifts WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete gift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gift not found", nil, infra.KindNotFound)
	}
	return nil
}

type RedemptionRepository struct{}

func NewRedemptionRepository() *RedemptionRepository {
	return &RedemptionRepository{}
}

const appendRedemptionSQL = `
INSERT INTO gift_redemptions (id, gift_id, customer_id, quantity, note)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *RedemptionRepository) Append(ctx context.Context, tx db.DBTX, giftID, customerID uuid.UUID, quantity int32, note string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, appendRedemptionSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(giftID),
		pgconv.UUIDToPgtype(customerID),
		quantity,
		note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to append gift redemption", err)
	}
	return id, nil
}
