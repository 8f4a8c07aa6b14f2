package storage

import (
	"context"
	"time"

	"pricetracker/pkg/domain"

	"github.com/shopspring/decimal"
)

// ProductStorage defines CRUD and query operations on tracked products.
type ProductStorage interface {
	// StoreProducts inserts one or more products and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error)
	// ProductByID fetches a product by its ID for the given owner. Returns nil
	// when not found.
	ProductByID(ctx context.Context, ownerUID string, ID domain.ProductID) (*domain.Product, error)
	// OwnerProducts returns all products tracked by the given owner, most
	// recently created first.
	OwnerProducts(ctx context.Context, ownerUID string) ([]domain.Product, error)
	// OwnerProductCount returns the number of products tracked by the owner.
	OwnerProductCount(ctx context.Context, ownerUID string) (int64, error)
	// StaleProducts returns products whose last check happened before the given
	// cutoff, oldest check first. A zero limit means no limit.
	StaleProducts(ctx context.Context, cutoff time.Time, limit uint) ([]domain.Product, error)
	// UpdatePrice records a newly confirmed price and marks the product checked.
	// Returns the updated row, or nil if the product no longer exists.
	UpdatePrice(ctx context.Context, ID domain.ProductID, price decimal.Decimal) (*domain.Product, error)
	// TouchChecked marks the given product as checked now without changing its
	// price.
	TouchChecked(ctx context.Context, ID domain.ProductID) error
	// DeleteProduct removes a product owned by the given owner and returns the
	// deleted row, or nil if it was not found.
	DeleteProduct(ctx context.Context, ownerUID string, ID domain.ProductID) (*domain.Product, error)
	// DeleteOwnerProducts removes every product tracked by the owner and
	// returns how many rows were deleted.
	DeleteOwnerProducts(ctx context.Context, ownerUID string) (int64, error)
}
