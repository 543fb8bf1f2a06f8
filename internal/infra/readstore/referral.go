package readstore

import (
	"context"

	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"
	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReferralReadStore struct {
	db db.DBTX
}

func NewReferralReadStore(dbtx db.DBTX) *ReferralReadStore {
	return &ReferralReadStore{db: dbtx}
}

const programColumns = `id, business_id, title, status, valid_from, valid_until, referrer_cap, reward, created_at, updated_at`

func (r *ReferralReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReferralProgramView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+programColumns+` FROM referral_programs WHERE id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanProgramView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find referral program by ID", err)
	}
	return view, nil
}

func (r *ReferralReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.ReferralProgramView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+programColumns+` FROM referral_programs WHERE business_id = $1 ORDER BY created_at DESC`,
		pgconv.UUIDToPgtype(businessID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find referral programs", err)
	}
	defer rows.Close()

	var result []*queries.ReferralProgramView
	for rows.Next() {
		view, err := scanProgramView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan referral program row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate referral program rows", err)
	}
	return result, nil
}

func (r *ReferralReadStore) FindParticipants(ctx context.Context, programID uuid.UUID) ([]*queries.ParticipantView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.program_id, p.customer_id, u.email, p.credited, p.note, p.created_at
		 FROM participants p
		 JOIN users u ON u.id = p.customer_id
		 WHERE p.program_id = $1
		 ORDER BY p.created_at ASC`,
		pgconv.UUIDToPgtype(programID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find participants", err)
	}
	defer rows.Close()

	var result []*queries.ParticipantView
	for rows.Next() {
		var v queries.ParticipantView
		if err := rows.Scan(&v.ID, &v.ProgramID, &v.CustomerID, &v.CustomerEmail, &v.Credited, &v.Note, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan participant row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate participant rows", err)
	}
	return result, nil
}

func scanProgramView(row pgx.Row) (*queries.ReferralProgramView, error) {
	var v queries.ReferralProgramView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Title, &v.Status, &v.ValidFrom, &v.ValidUntil, &v.ReferrerCap, &v.Reward, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
