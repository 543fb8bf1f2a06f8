package repository

import (
	"context"

	"engage-api/internal/domain/referral"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReferralProgramRepository struct{}

func NewReferralProgramRepository() *ReferralProgramRepository {
	return &ReferralProgramRepository{}
}

const createProgramSQL = `
INSERT INTO referral_programs (id, business_id, title, status, valid_from, valid_until, referrer_cap, reward)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *ReferralProgramRepository) Create(ctx context.Context, tx db.DBTX, p *referral.Program) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createProgramSQL,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.BusinessID()),
		p.Title(),
		p.Status().String(),
		pgconv.TimeToPgtype(p.Window().From()),
		pgconv.TimeToPgtype(p.Window().Until()),
		pgconv.Int32PtrToPgtype(p.ReferrerCap()),
		p.Reward(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create referral program", err)
	}
	return id, nil
}

const updateProgramSQL = `
UPDATE referral_programs
SET title = $2, status = $3, valid_from = $4, valid_until = $5, referrer_cap = $6, reward = $7, updated_at = now()
WHERE id = $1
`

func (r *ReferralProgramRepository) Update(ctx context.Context, tx db.DBTX, p *referral.Program) error {
	tag, err := tx.Exec(ctx, updateProgramSQL,
		pgconv.UUIDToPgtype(p.ID()),
		p.Title(),
		p.Status().String(),
		pgconv.TimeToPgtype(p.Window().From()),
		pgconv.TimeToPgtype(p.Window().Until()),
		pgconv.Int32PtrToPgtype(p.ReferrerCap()),
		p.Reward(),
	)
	if err != nil {
		return wrapWriteErr("failed to update referral program", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("referral program not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReferralProgramRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM referral_programs WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete referral program", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("referral program not found", nil, infra.KindNotFound)
	}
	return nil
}

type ParticipantRepository struct{}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

// Ensure is idempotent: the (program_id, customer_id) unique constraint
// turns repeat joins into no-ops.
const ensureParticipantSQL = `
INSERT INTO participants (id, program_id, customer_id, note)
VALUES ($1, $2, $3, $4)
ON CONFLICT (program_id, customer_id) DO UPDATE SET updated_at = now()
RETURNING id
`

func (r *ParticipantRepository) Ensure(ctx context.Context, tx db.DBTX, programID, customerID uuid.UUID, note string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, ensureParticipantSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(programID),
		pgconv.UUIDToPgtype(customerID),
		note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to ensure participant", err)
	}
	return id, nil
}

const incrementCreditedSQL = `
UPDATE participants
SET credited = credited + 1, updated_at = now()
WHERE program_id = $1 AND customer_id = $2
`

func (r *ParticipantRepository) IncrementCredited(ctx context.Context, tx db.DBTX, programID, customerID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, incrementCreditedSQL,
		pgconv.UUIDToPgtype(programID),
		pgconv.UUIDToPgtype(customerID),
	)
	if err != nil {
		return 0, wrapWriteErr("failed to increment participant credit", err)
	}
	return tag.RowsAffected(), nil
}
