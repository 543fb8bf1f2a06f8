package repository

import (
	"context"

	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PunchRepository struct{}

func NewPunchRepository() *PunchRepository {
	return &PunchRepository{}
}

const appendPunchSQL = `
INSERT INTO punches (id, card_id, customer_id, quantity, note)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *PunchRepository) Append(ctx context.Context, tx db.DBTX, cardID, customerID uuid.UUID, quantity int32, note string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, appendPunchSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(cardID),
		pgconv.UUIDToPgtype(customerID),
		quantity,
		note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to append punch", err)
	}
	return id, nil
}
