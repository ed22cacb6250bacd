//go:build integration

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

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestShop inserts a shop; a nil shippingFee leaves the column NULL so
// the platform default applies.
func CreateTestShop(t *testing.T, db DBLike, name string, shippingFee *int64) uuid.UUID {
	t.Helper()

	shopID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO shops (id, name, shipping_fee) VALUES ($1, $2, $3)",
		shopID, name, shippingFee)
	require.NoError(t, err)

	return shopID
}

func CreateTestSku(t *testing.T, db DBLike, shopID uuid.UUID, name string, price int64) uuid.UUID {
	t.Helper()

	skuID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO skus (id, shop_id, name, price) VALUES ($1, $2, $3, $4)",
		skuID, shopID, name, price)
	require.NoError(t, err)

	return skuID
}

func AddCartItem(t *testing.T, db DBLike, userID, skuID uuid.UUID, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO cart_items (user_id, sku_id, quantity) VALUES ($1, $2, $3)",
		userID, skuID, quantity)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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
	return nil
}
