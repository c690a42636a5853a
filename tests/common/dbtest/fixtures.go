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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a conn and a tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, strings.Split(email, "@")[0], email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestSpace(t *testing.T, db DBLike, name string, capacity int32) uuid.UUID {
	t.Helper()

	spaceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO spaces (id, name, description, capacity) VALUES ($1, $2, $3, $4)",
		spaceID, name, name+" for tests", capacity)
	require.NoError(t, err)

	return spaceID
}

func CreateTestResource(t *testing.T, db DBLike, name string, quantity int32) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, description, quantity) VALUES ($1, $2, $3, $4)",
		resourceID, name, name+" for tests", quantity)
	require.NoError(t, err)

	return resourceID
}

func CreateTestClient(t *testing.T, db DBLike, name, cpf string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, name, cpf, email, phone) VALUES ($1, $2, $3, $4, $5)",
		clientID, name, cpf, strings.ToLower(strings.ReplaceAll(name, " ", "."))+"@example.com", "+55 11 99999-0000")
	require.NoError(t, err)

	return clientID
}

func ResourceQuantity(t *testing.T, db DBLike, resourceID uuid.UUID) int32 {
	t.Helper()

	var quantity int32
	err := db.QueryRow(context.Background(), "SELECT quantity FROM resources WHERE id = $1", resourceID).Scan(&quantity)
	require.NoError(t, err)

	return quantity
}

// inserts the default admin account
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash, role, is_active) VALUES
		    ('Administrator', 'admin@example.com', $1, 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`, passwordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
