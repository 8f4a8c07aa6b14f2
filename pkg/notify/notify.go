// Package notify delivers product alerts to owners over email.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
package notify

import (
	"context"

	"pricetracker/pkg/domain"

	"github.com/shopspring/decimal"
)

// Mailer sends product notifications to the owning user.
type Mailer interface {
	// PriceDrop notifies the owner that a tracked product got cheaper. The
	// product carries the old price; newPrice is the freshly confirmed one.
	PriceDrop(ctx context.Context, product domain.Product, newPrice decimal.Decimal) error
	// ProductAdded confirms that tracking started for a new product.
	ProductAdded(ctx context.Context, product domain.Product) error
}
