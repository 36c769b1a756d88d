package repository

import (
	"context"
	"testing"
	"time"

	"menu-board/internal/database"
	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the embedded
// migrations, and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedProduct inserts a product and returns it.
func seedProduct(t *testing.T, pool *pgxpool.Pool, name string, price int64) *model.Product {
	t.Helper()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	now := time.Now().UTC().Truncate(time.Millisecond)
	product := &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     model.MustMoney(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, product))

	return product
}

// seedMenu inserts a menu with a single line item over the given product.
func seedMenu(t *testing.T, pool *pgxpool.Pool, price int64, displayed bool, product *model.Product, quantity int) *model.Menu {
	t.Helper()

	ctx := context.Background()
	repo := NewMenuRepository(pool, zerolog.Nop())

	now := time.Now().UTC().Truncate(time.Millisecond)
	menuID := uuid.New()
	menu := &model.Menu{
		ID:        menuID,
		Name:      "chicken set",
		Price:     model.MustMoney(price),
		Displayed: displayed,
		LineItems: []model.MenuLineItem{
			{
				ID:        uuid.New(),
				MenuID:    menuID,
				ProductID: product.ID,
				Quantity:  quantity,
				Seq:       0,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, menu))

	return menu
}
