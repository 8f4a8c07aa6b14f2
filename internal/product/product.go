package product

import (
	"context"
	"fmt"
	"time"

	"pricetracker/internal/config"
	"pricetracker/pkg/domain"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/notify"
	"pricetracker/pkg/scrape"
	"pricetracker/pkg/serrors"
	"pricetracker/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the product service.
type Options struct {
	// MaxPerUser caps how many products a single user may track. Zero or
	// negative disables the cap.
	MaxPerUser int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxPerUser: cfg.MaxProductsPerUser,
	}
}

// products is the concrete implementation of the Products interface. It
// coordinates persistence, live scraping and notification mail.
type products struct {
	options Options
	storage storage.Storage
	scraper scrape.Scraper
	mailer  notify.Mailer
}

// New creates a new Products service backed by the provided storage, scraper
// and mailer.
func New(storage storage.Storage, scraper scrape.Scraper, mailer notify.Mailer, options Options) Products {
	return &products{
		options: options,
		storage: storage,
		scraper: scraper,
		mailer:  mailer,
	}
}

// Create scrapes the product page synchronously and stores the result. The
// caller gets the stored product with its confirmed name and price, or an
// error when the page cannot be scraped. The per-user cap is checked inside
// the storing transaction so concurrent creates cannot overshoot it.
func (p *products) Create(ctx context.Context, ownerUID, ownerEmail, rawURL string) (*domain.Product, error) {
	URL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	result, err := p.scraper.Scrape(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("could not scrape product page: %w", err)
	}

	var created *domain.Product
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if p.options.MaxPerUser > 0 {
			count, err := tx.OwnerProductCount(ctx, ownerUID)
			if err != nil {
				return fmt.Errorf("could not count products: %w", err)
			}
			if count >= p.options.MaxPerUser {
				return serrors.With(serrors.ErrBadRequest, "you have reached the maximum number of products")
			}
		}

		res, err := tx.StoreProducts(ctx, domain.Product{
			URL:           URL,
			Name:          result.Name,
			CurrentPrice:  result.Price,
			OwnerUID:      ownerUID,
			OwnerEmail:    ownerEmail,
			LastCheckedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("could not store product: %w", err)
		}
		created = &res[0]

		return nil
	}); err != nil {
		return nil, err
	}

	// mail failures must not undo a successful create
	if err := p.mailer.ProductAdded(ctx, *created); err != nil {
		logger.Error(ctx, "could not send product added email",
			zap.String("product_id", created.ID.String()), zap.Error(err))
	}

	return created, nil
}

// Get fetches a single product by ID for the given owner.
func (p *products) Get(ctx context.Context, ownerUID string, ID domain.ProductID) (*domain.Product, error) {
	res, err := p.storage.ProductByID(ctx, ownerUID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return res, nil
}

// List returns all products tracked by the given owner.
func (p *products) List(ctx context.Context, ownerUID string) ([]domain.Product, error) {
	res, err := p.storage.OwnerProducts(ctx, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	return res, nil
}

// Delete removes a product belonging to the given owner. If the product does
// not exist, a not-found error is returned.
func (p *products) Delete(ctx context.Context, ownerUID string, ID domain.ProductID) error {
	res, err := p.storage.DeleteProduct(ctx, ownerUID, ID)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "product not found")
	}

	return nil
}

// DeleteAll removes every product tracked by the owner and reports how many
// were removed.
func (p *products) DeleteAll(ctx context.Context, ownerUID string) (int64, error) {
	deleted, err := p.storage.DeleteOwnerProducts(ctx, ownerUID)
	if err != nil {
		return 0, fmt.Errorf("could not delete products: %w", err)
	}

	return deleted, nil
}
