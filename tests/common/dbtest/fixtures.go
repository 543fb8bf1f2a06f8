//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultBusinessName = "Demo Business"

	// TestPassword is the plaintext behind TestPasswordHash (bcrypt cost 12).
	TestPassword     = "password123"
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestBusiness(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO businesses (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", businessID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM businesses WHERE name = $1", name).Scan(&businessID))
	}
	return businessID
}

// CreateTestUser inserts a user with the shared test password. Owners and
// admins get attached to the default business unless one is given.
func CreateTestUser(t *testing.T, db DBLike, email, role string, businessID *uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	if businessID == nil && role != "customer" {
		id := CreateTestBusiness(t, db, DefaultBusinessName)
		businessID = &id
	}

	userID := uuid.New()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, business_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, businessID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// SeedReferenceData inserts the rows every e2e test assumes exist.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (id, name) VALUES
		    (gen_random_uuid(), 'Demo Business'),
		    (gen_random_uuid(), 'Other Business')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, name)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})

	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE statement")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}
