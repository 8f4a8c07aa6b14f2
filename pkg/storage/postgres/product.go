package postgres

import (
	"context"
	"fmt"
	"time"

	"pricetracker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	productsTable = "products"
)

func (p *PgSQL) StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	pgProducts := domainProductsToPg(products)

	var result []PgProduct
	if err := p.Builder.Insert(productsTable).
		Rows(pgProducts).
		Returning(&PgProduct{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store products into pg: %w", err)
	}

	return pgProductsToDomain(result), nil
}

// ProductByID returns a product by its ID scoped to the given owner.
func (p *PgSQL) ProductByID(ctx context.Context, ownerUID string, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("owner_uid").Eq(ownerUID),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// OwnerProducts returns all products of an owner ordered newest first.
func (p *PgSQL) OwnerProducts(ctx context.Context, ownerUID string) ([]domain.Product, error) {
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(goqu.I("owner_uid").Eq(ownerUID)).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch owner products from pg: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

func (p *PgSQL) OwnerProductCount(ctx context.Context, ownerUID string) (int64, error) {
	count, err := p.Builder.From(productsTable).
		Where(goqu.I("owner_uid").Eq(ownerUID)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count owner products in pg: %w", err)
	}

	return count, nil
}

// StaleProducts returns products last checked before the cutoff, ordered so
// the longest-unchecked products are refreshed first.
func (p *PgSQL) StaleProducts(ctx context.Context, cutoff time.Time, limit uint) ([]domain.Product, error) {
	ds := p.Builder.From(productsTable).
		Where(goqu.I("last_checked_at").Lt(cutoff)).
		Order(goqu.I("last_checked_at").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgProduct
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stale products from pg: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

// UpdatePrice records a confirmed price and stamps the check time.
func (p *PgSQL) UpdatePrice(ctx context.Context, id domain.ProductID, price decimal.Decimal) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"current_price":   price,
			"last_checked_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update product price in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TouchChecked stamps the check time without changing the price.
func (p *PgSQL) TouchChecked(ctx context.Context, id domain.ProductID) error {
	_, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"last_checked_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch product in pg: %w", err)
	}

	return nil
}

// DeleteProduct removes a product owned by the given owner and returns the
// deleted record.
func (p *PgSQL) DeleteProduct(ctx context.Context, ownerUID string, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.Delete(productsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("owner_uid").Eq(ownerUID),
		).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteOwnerProducts removes every product of an owner.
func (p *PgSQL) DeleteOwnerProducts(ctx context.Context, ownerUID string) (int64, error) {
	res, err := p.Builder.Delete(productsTable).
		Where(goqu.I("owner_uid").Eq(ownerUID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete owner products in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return deleted, nil
}
