package readstore

import (
	"context"
	"time"

	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"
	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IntentReadStore struct {
	db db.DBTX
}

func NewIntentReadStore(dbtx db.DBTX) *IntentReadStore {
	return &IntentReadStore{db: dbtx}
}

const intentColumns = `id, kind, offer_id, customer_id, created_by, status, quantity, note, expires_at, consumed_at, created_at, updated_at`

func (r *IntentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IntentView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+intentColumns+` FROM intents WHERE id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanIntentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find intent by ID", err)
	}
	return view, nil
}

func (r *IntentReadStore) FindByOfferFirstPage(ctx context.Context, offerID uuid.UUID, limit int32) ([]*queries.IntentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentColumns+` FROM intents WHERE offer_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		pgconv.UUIDToPgtype(offerID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intents by offer first page", err)
	}
	defer rows.Close()
	return collectIntentViews(rows)
}

func (r *IntentReadStore) FindByOfferKeyset(ctx context.Context, offerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.IntentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentColumns+` FROM intents
		 WHERE offer_id = $1 AND (created_at, id) < ($2, $3)
		 ORDER BY created_at DESC, id DESC LIMIT $4`,
		pgconv.UUIDToPgtype(offerID), pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intents by offer keyset", err)
	}
	defer rows.Close()
	return collectIntentViews(rows)
}

func (r *IntentReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.IntentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentColumns+` FROM intents WHERE customer_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		pgconv.UUIDToPgtype(customerID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intents by customer first page", err)
	}
	defer rows.Close()
	return collectIntentViews(rows)
}

func (r *IntentReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.IntentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentColumns+` FROM intents
		 WHERE customer_id = $1 AND (created_at, id) < ($2, $3)
		 ORDER BY created_at DESC, id DESC LIMIT $4`,
		pgconv.UUIDToPgtype(customerID), pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intents by customer keyset", err)
	}
	defer rows.Close()
	return collectIntentViews(rows)
}

func scanIntentView(row pgx.Row) (*queries.IntentView, error) {
	var v queries.IntentView
	err := row.Scan(&v.ID, &v.Kind, &v.OfferID, &v.CustomerID, &v.CreatedBy, &v.Status,
		&v.Quantity, &v.Note, &v.ExpiresAt, &v.ConsumedAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectIntentViews(rows pgx.Rows) ([]*queries.IntentView, error) {
	var result []*queries.IntentView
	for rows.Next() {
		view, err := scanIntentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan intent row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate intent rows", err)
	}
	return result, nil
}
