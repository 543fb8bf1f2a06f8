package readstore

import (
	"context"
	"time"

	"engage-api/internal/domain/card"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"
	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CardReadStore struct {
	db db.DBTX
}

func NewCardReadStore(dbtx db.DBTX) *CardReadStore {
	return &CardReadStore{db: dbtx}
}

const cardColumns = `id, business_id, title, status, valid_from, valid_until, stamps_required, reward, created_at, updated_at`

func (r *CardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CardView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanCardView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find card by ID", err)
	}
	return view, nil
}

func (r *CardReadStore) FindByBusinessFirstPage(ctx context.Context, businessID uuid.UUID, limit int32) ([]*queries.CardView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE business_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		pgconv.UUIDToPgtype(businessID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cards first page", err)
	}
	defer rows.Close()
	return collectCardViews(rows)
}

func (r *CardReadStore) FindByBusinessKeyset(ctx context.Context, businessID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CardView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+` FROM cards
		 WHERE business_id = $1 AND (created_at, id) < ($2, $3)
		 ORDER BY created_at DESC, id DESC LIMIT $4`,
		pgconv.UUIDToPgtype(businessID), pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cards keyset", err)
	}
	defer rows.Close()
	return collectCardViews(rows)
}

const punchColumns = `id, card_id, customer_id, quantity, note, created_at`

func (r *CardReadStore) FindPunchesFirstPage(ctx context.Context, cardID uuid.UUID, limit int32) ([]*queries.PunchView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+punchColumns+` FROM punches WHERE card_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		pgconv.UUIDToPgtype(cardID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find punches first page", err)
	}
	defer rows.Close()
	return collectPunchViews(rows)
}

func (r *CardReadStore) FindPunchesKeyset(ctx context.Context, cardID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PunchView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+punchColumns+` FROM punches
		 WHERE card_id = $1 AND (created_at, id) < ($2, $3)
		 ORDER BY created_at DESC, id DESC LIMIT $4`,
		pgconv.UUIDToPgtype(cardID), pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find punches keyset", err)
	}
	defer rows.Close()
	return collectPunchViews(rows)
}

// FindPunchesByCardAndCustomer returns the punch ledger in append order
// for progress aggregation.
func (r *CardReadStore) FindPunchesByCardAndCustomer(ctx context.Context, cardID, customerID uuid.UUID) ([]card.PunchRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT quantity, created_at FROM punches
		 WHERE card_id = $1 AND customer_id = $2
		 ORDER BY created_at ASC, id ASC`,
		pgconv.UUIDToPgtype(cardID), pgconv.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find punch ledger", err)
	}
	defer rows.Close()

	var records []card.PunchRecord
	for rows.Next() {
		var rec card.PunchRecord
		if err := rows.Scan(&rec.Quantity, &rec.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan punch ledger row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate punch ledger", err)
	}
	return records, nil
}

func scanCardView(row pgx.Row) (*queries.CardView, error) {
	var v queries.CardView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Title, &v.Status, &v.ValidFrom, &v.ValidUntil, &v.StampsRequired, &v.Reward, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectCardViews(rows pgx.Rows) ([]*queries.CardView, error) {
	var result []*queries.CardView
	for rows.Next() {
		view, err := scanCardView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan card row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate card rows", err)
	}
	return result, nil
}

func collectPunchViews(rows pgx.Rows) ([]*queries.PunchView, error) {
	var result []*queries.PunchView
	for rows.Next() {
		var v queries.PunchView
		if err := rows.Scan(&v.ID, &v.CardID, &v.CustomerID, &v.Quantity, &v.Note, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan punch row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate punch rows", err)
	}
	return result, nil
}
