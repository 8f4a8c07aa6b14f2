package postgres

import (
	"database/sql"
	"time"

	"pricetracker/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgProduct struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	URL          string          `db:"url"`
	Name         string          `db:"name"`
	CurrentPrice decimal.Decimal `db:"current_price"`

	OwnerUID   string `db:"owner_uid"`
	OwnerEmail string `db:"owner_email"`

	LastCheckedAt time.Time    `db:"last_checked_at"`
	CreatedAt     time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt     sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() *domain.Product {
	return &domain.Product{
		ID:            domain.ProductID(p.ID),
		URL:           p.URL,
		Name:          p.Name,
		CurrentPrice:  p.CurrentPrice,
		OwnerUID:      p.OwnerUID,
		OwnerEmail:    p.OwnerEmail,
		LastCheckedAt: p.LastCheckedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:            uuid.UUID(product.ID),
		URL:           product.URL,
		Name:          product.Name,
		CurrentPrice:  product.CurrentPrice,
		OwnerUID:      product.OwnerUID,
		OwnerEmail:    product.OwnerEmail,
		LastCheckedAt: product.LastCheckedAt,
		CreatedAt:     product.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  product.UpdatedAt,
			Valid: !product.UpdatedAt.IsZero(),
		},
	}
}

func domainProductsToPg(products []domain.Product) []PgProduct {
	out := make([]PgProduct, len(products))
	for i := range out {
		out[i].FromDomain(products[i])
	}

	return out
}

func pgProductsToDomain(products []PgProduct) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, product := range products {
		out = append(out, *product.ToDomain())
	}

	return out
}
