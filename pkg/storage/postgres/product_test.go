package postgres_test

import (
	"context"
	"testing"
	"time"

	"pricetracker/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProduct(ownerUID, url, price string) domain.Product {
	return domain.Product{
		URL:           url,
		Name:          "Test Product",
		CurrentPrice:  decimal.RequireFromString(price),
		OwnerUID:      ownerUID,
		OwnerEmail:    ownerUID + "@example.com",
		LastCheckedAt: time.Now().UTC(),
	}
}

func TestPgSQL_StoreProducts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()

	t.Run("store single product", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreProducts(ctx, testProduct(ownerUID, "https://www.amazon.com.br/dp/1", "199.90"))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.NotEqual(t, domain.ProductID{}, res[0].ID)
		require.Equal(t, "https://www.amazon.com.br/dp/1", res[0].URL)
		require.True(t, res[0].CurrentPrice.Equal(decimal.RequireFromString("199.90")))
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple products", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreProducts(ctx,
			testProduct(ownerUID, "https://www.amazon.com.br/dp/2", "10.00"),
			testProduct(ownerUID, "https://www.amazon.com.br/dp/3", "20.00"))
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty products", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreProducts(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ProductByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerA := uuid.NewString()
	ownerB := uuid.NewString()

	storedA, err := pgSQL.StoreProducts(ctx, testProduct(ownerA, "https://www.amazon.com.br/dp/a", "50.00"))
	require.NoError(t, err)
	storedB, err := pgSQL.StoreProducts(ctx, testProduct(ownerB, "https://www.amazon.com.br/dp/b", "60.00"))
	require.NoError(t, err)

	// correct owner & id
	got, err := pgSQL.ProductByID(ctx, ownerA, storedA[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, storedA[0].ID, got.ID)

	// wrong owner should not see another owner's product
	got2, err := pgSQL.ProductByID(ctx, ownerA, storedB[0].ID)
	require.NoError(t, err)
	require.Nil(t, got2)

	// unknown id
	got3, err := pgSQL.ProductByID(ctx, ownerA, domain.ProductID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got3)
}

func TestPgSQL_OwnerProductsAndCount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	other := uuid.NewString()

	_, err := pgSQL.StoreProducts(ctx,
		testProduct(ownerUID, "https://www.amazon.com.br/dp/1", "10.00"),
		testProduct(ownerUID, "https://www.amazon.com.br/dp/2", "20.00"),
		testProduct(other, "https://www.amazon.com.br/dp/3", "30.00"))
	require.NoError(t, err)

	products, err := pgSQL.OwnerProducts(ctx, ownerUID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.Equal(t, ownerUID, p.OwnerUID)
	}

	count, err := pgSQL.OwnerProductCount(ctx, ownerUID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = pgSQL.OwnerProductCount(ctx, uuid.NewString())
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestPgSQL_StaleProducts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	now := time.Now().UTC()

	fresh := testProduct(ownerUID, "https://www.amazon.com.br/dp/fresh", "10.00")
	fresh.LastCheckedAt = now
	oldest := testProduct(ownerUID, "https://www.amazon.com.br/dp/oldest", "20.00")
	oldest.LastCheckedAt = now.Add(-time.Hour)
	older := testProduct(ownerUID, "https://www.amazon.com.br/dp/older", "30.00")
	older.LastCheckedAt = now.Add(-30 * time.Minute)

	_, err := pgSQL.StoreProducts(ctx, fresh, oldest, older)
	require.NoError(t, err)

	// cutoff excludes the freshly checked product
	stale, err := pgSQL.StaleProducts(ctx, now.Add(-7*time.Minute), 0)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	// longest unchecked first
	require.Equal(t, "https://www.amazon.com.br/dp/oldest", stale[0].URL)
	require.Equal(t, "https://www.amazon.com.br/dp/older", stale[1].URL)

	// limit applies after ordering
	stale, err = pgSQL.StaleProducts(ctx, now.Add(-7*time.Minute), 1)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, "https://www.amazon.com.br/dp/oldest", stale[0].URL)
}

func TestPgSQL_UpdatePrice(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	p := testProduct(ownerUID, "https://www.amazon.com.br/dp/drop", "100.00")
	p.LastCheckedAt = time.Now().UTC().Add(-time.Hour)
	stored, err := pgSQL.StoreProducts(ctx, p)
	require.NoError(t, err)

	before := stored[0].LastCheckedAt

	updated, err := pgSQL.UpdatePrice(ctx, stored[0].ID, decimal.RequireFromString("89.90"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.CurrentPrice.Equal(decimal.RequireFromString("89.90")))
	require.True(t, updated.LastCheckedAt.After(before))
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown product
	updated, err = pgSQL.UpdatePrice(ctx, domain.ProductID(uuid.New()), decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_TouchChecked(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	p := testProduct(ownerUID, "https://www.amazon.com.br/dp/touch", "100.00")
	p.LastCheckedAt = time.Now().UTC().Add(-time.Hour)
	stored, err := pgSQL.StoreProducts(ctx, p)
	require.NoError(t, err)

	require.NoError(t, pgSQL.TouchChecked(ctx, stored[0].ID))

	got, err := pgSQL.ProductByID(ctx, ownerUID, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.LastCheckedAt.After(stored[0].LastCheckedAt))
	// price stays
	require.True(t, got.CurrentPrice.Equal(decimal.RequireFromString("100.00")))
}

func TestPgSQL_DeleteProduct(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	stored, err := pgSQL.StoreProducts(ctx, testProduct(ownerUID, "https://www.amazon.com.br/dp/del", "10.00"))
	require.NoError(t, err)
	id := stored[0].ID

	// wrong owner cannot delete
	deleted, err := pgSQL.DeleteProduct(ctx, uuid.NewString(), id)
	require.NoError(t, err)
	require.Nil(t, deleted)

	// delete
	deleted, err = pgSQL.DeleteProduct(ctx, ownerUID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	// fetching by id should return nil
	got, err := pgSQL.ProductByID(ctx, ownerUID, id)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again should not error
	deleted, err = pgSQL.DeleteProduct(ctx, ownerUID, id)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_DeleteOwnerProducts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerUID := uuid.NewString()
	other := uuid.NewString()
	_, err := pgSQL.StoreProducts(ctx,
		testProduct(ownerUID, "https://www.amazon.com.br/dp/1", "10.00"),
		testProduct(ownerUID, "https://www.amazon.com.br/dp/2", "20.00"),
		testProduct(other, "https://www.amazon.com.br/dp/3", "30.00"))
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteOwnerProducts(ctx, ownerUID)
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	// the other owner's products are untouched
	count, err := pgSQL.OwnerProductCount(ctx, other)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
