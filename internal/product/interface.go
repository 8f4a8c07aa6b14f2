package product

import (
	"context"

	"pricetracker/pkg/domain"
)

//go:generate mockgen -package mockproduct -source=interface.go -destination=mock/mockproduct.go *
type Products interface {
	Create(ctx context.Context, ownerUID, ownerEmail, rawURL string) (*domain.Product, error)
	Get(ctx context.Context, ownerUID string, ID domain.ProductID) (*domain.Product, error)
	List(ctx context.Context, ownerUID string) ([]domain.Product, error)
	Delete(ctx context.Context, ownerUID string, ID domain.ProductID) error
	DeleteAll(ctx context.Context, ownerUID string) (int64, error)
}
