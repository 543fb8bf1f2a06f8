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

type GiftReadStore struct {
	db db.DBTX
}

func NewGiftReadStore(dbtx db.DBTX) *GiftReadStore {
	return &GiftReadStore{db: dbtx}
}

const giftColumns = `id, business_id, title, status, valid_from, valid_until, per_customer_cap, total_cap, description, created_at, updated_at`

func (r *GiftReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GiftView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+giftColumns+` FROM gifts WHERE id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanGiftView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gift by ID", err)
	}
	return view, nil
}

func (r *GiftReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.GiftView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+giftColumns+` FROM gifts WHERE business_id = $1 ORDER BY created_at DESC`,
		pgconv.UUIDToPgtype(businessID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find gifts", err)
	}
	defer rows.Close()

	var result []*queries.GiftView
	for rows.Next() {
		view, err := scanGiftView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan gift row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gift rows", err)
	}
	return result, nil
}

func scanGiftView(row pgx.Row) (*queries.GiftView, error) {
	var v queries.GiftView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Title, &v.Status, &v.ValidFrom, &v.ValidUntil, &v.PerCustomerCap, &v.TotalCap, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
