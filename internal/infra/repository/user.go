package repository

import (
	"context"
	"time"

	"engage-api/internal/domain/user"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, business_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		passwordHash,
		u.Role().String(),
		pgconv.UUIDPtrToPgtype(u.BusinessID()),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
		pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return wrapWriteErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
