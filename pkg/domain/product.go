package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductID uniquely identifies a tracked product.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ProductID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ProductID) String() string { return uuid.UUID(id).String() }

// Product is a web product whose price is tracked on a schedule. The URL
// determines which extraction strategy applies; the strategy itself is never
// stored.
type Product struct {
	// ID is the unique identifier of the product.
	ID ProductID `json:"id"`

	// URL is the source page address, stored in normalized form.
	URL string `json:"url"`
	// Name is the last-known display name scraped from the page.
	Name string `json:"name"`
	// CurrentPrice is the last confirmed price. It only moves down: a newly
	// scraped price replaces it when strictly lower.
	CurrentPrice decimal.Decimal `json:"currentPrice"`

	// OwnerUID is the identity-provider subject of the owning user.
	OwnerUID string `json:"ownerUid"`
	// OwnerEmail is the notification target for price drops.
	OwnerEmail string `json:"ownerEmail"`

	// LastCheckedAt is when the product was last checked, successfully or not.
	LastCheckedAt time.Time `json:"lastCheckedAt"`
	// CreatedAt is when tracking started.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
