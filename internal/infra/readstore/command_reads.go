package readstore

import (
	"context"

	"engage-api/internal/domain/intent"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReadStore serves the write side's validation snapshots.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

func (r *CommandReadStore) CardByID(ctx context.Context, id uuid.UUID) (*shared.CardSnapshot, error) {
	var s shared.CardSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, title, status, valid_from, valid_until, stamps_required, reward, created_at, updated_at
		 FROM cards WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.BusinessID, &s.Title, &s.Status, &s.ValidFrom, &s.ValidUntil, &s.StampsRequired, &s.Reward, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("card", err)
	}
	return &s, nil
}

func (r *CommandReadStore) ReferralProgramByID(ctx context.Context, id uuid.UUID) (*shared.ReferralProgramSnapshot, error) {
	var s shared.ReferralProgramSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, title, status, valid_from, valid_until, referrer_cap, reward, created_at, updated_at
		 FROM referral_programs WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.BusinessID, &s.Title, &s.Status, &s.ValidFrom, &s.ValidUntil, &s.ReferrerCap, &s.Reward, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("referral program", err)
	}
	return &s, nil
}

func (r *CommandReadStore) GiftByID(ctx context.Context, id uuid.UUID) (*shared.GiftSnapshot, error) {
	var s shared.GiftSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, title, status, valid_from, valid_until, per_customer_cap, total_cap, description, created_at, updated_at
		 FROM gifts WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.BusinessID, &s.Title, &s.Status, &s.ValidFrom, &s.ValidUntil, &s.PerCustomerCap, &s.TotalCap, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("gift", err)
	}
	return &s, nil
}

func (r *CommandReadStore) SurveyByID(ctx context.Context, id uuid.UUID) (*shared.SurveySnapshot, error) {
	var s shared.SurveySnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, title, status, question, created_at, updated_at
		 FROM surveys WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.BusinessID, &s.Title, &s.Status, &s.Question, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("survey", err)
	}
	return &s, nil
}

func (r *CommandReadStore) IntentByID(ctx context.Context, id uuid.UUID) (*shared.IntentSnapshot, error) {
	var s shared.IntentSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, kind, offer_id, customer_id, created_by, status, quantity, note, expires_at, consumed_at, created_at, updated_at
		 FROM intents WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.Kind, &s.OfferID, &s.CustomerID, &s.CreatedBy, &s.Status, &s.Quantity, &s.Note, &s.ExpiresAt, &s.ConsumedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("intent", err)
	}
	return &s, nil
}

func (r *CommandReadStore) ParticipantByProgramAndCustomer(ctx context.Context, programID, customerID uuid.UUID) (*shared.ParticipantSnapshot, error) {
	var s shared.ParticipantSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, program_id, customer_id, credited, note, created_at, updated_at
		 FROM participants WHERE program_id = $1 AND customer_id = $2`,
		pgconv.UUIDToPgtype(programID), pgconv.UUIDToPgtype(customerID)).Scan(&s.ID, &s.ProgramID, &s.CustomerID, &s.Credited, &s.Note, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapSnapshotErr("participant", err)
	}
	return &s, nil
}

func (r *CommandReadStore) CountLiveIntents(ctx context.Context, kind intent.Kind, offerID uuid.UUID, createdBy *uuid.UUID) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM intents
		 WHERE kind = $1 AND offer_id = $2
		   AND status <> 'canceled'
		   AND ($3::uuid IS NULL OR created_by = $3)`,
		kind.String(), pgconv.UUIDToPgtype(offerID), pgconv.UUIDPtrToPgtype(createdBy)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count live intents", err)
	}
	return count, nil
}

func wrapSnapshotErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to read "+what+" snapshot", err)
}
