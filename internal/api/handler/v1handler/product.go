package v1handler

import (
	"net/http"
	"time"

	"pricetracker/pkg/domain"
	"pricetracker/pkg/serrors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateProductRequest is the payload for POST /v1/products.
type CreateProductRequest struct {
	URL string `json:"url"`
}

// Product is the wire representation of a tracked product. Prices are
// rendered as fixed two-decimal strings to keep them exact.
type Product struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Name          string     `json:"name"`
	CurrentPrice  string     `json:"currentPrice"`
	LastCheckedAt time.Time  `json:"lastCheckedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ProductList is the response for GET /v1/products.
type ProductList struct {
	Items []Product `json:"items"`
}

// DeletedCount is the response for DELETE /v1/products.
type DeletedCount struct {
	Deleted int64 `json:"deleted"`
}

// DomainProductToV1 converts a domain product to its wire form. Owner fields
// are never exposed; callers only ever see their own products.
func DomainProductToV1(in *domain.Product) *Product {
	out := &Product{
		ID:            in.ID.String(),
		URL:           in.URL,
		Name:          in.Name,
		CurrentPrice:  in.CurrentPrice.StringFixed(2),
		LastCheckedAt: in.LastCheckedAt,
		CreatedAt:     in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

// CreateProduct starts tracking a new product. The page is scraped
// synchronously so the response already carries the product name and price.
func (h *Handler) CreateProduct(c echo.Context) error {
	identity := GetIdentity(c)
	if identity.Email == "" {
		return serrors.With(serrors.ErrBadRequest, "token carries no email claim")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if req.URL == "" {
		return serrors.With(serrors.ErrBadRequest, "url is required")
	}

	created, err := h.deps.Products.Create(c.Request().Context(), identity.UID, identity.Email, req.URL)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusCreated, DomainProductToV1(created))
}

// ListProducts returns all products tracked by the caller.
func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.deps.Products.List(c.Request().Context(), GetIdentity(c).UID)
	if err != nil {
		return err //nolint: wrapcheck
	}

	items := make([]Product, 0, len(products))
	for i := range products {
		items = append(items, *DomainProductToV1(&products[i]))
	}

	return c.JSON(http.StatusOK, ProductList{Items: items})
}

// GetProduct returns a single product owned by the caller.
func (h *Handler) GetProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	res, err := h.deps.Products.Get(c.Request().Context(), GetIdentity(c).UID, id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, DomainProductToV1(res))
}

// DeleteProduct stops tracking a single product.
func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := h.deps.Products.Delete(c.Request().Context(), GetIdentity(c).UID, id); err != nil {
		return err //nolint: wrapcheck
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllProducts stops tracking everything the caller owns.
func (h *Handler) DeleteAllProducts(c echo.Context) error {
	deleted, err := h.deps.Products.DeleteAll(c.Request().Context(), GetIdentity(c).UID)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.JSON(http.StatusOK, DeletedCount{Deleted: deleted})
}

func productID(c echo.Context) (domain.ProductID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domain.ProductID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product ID")
	}

	return domain.ProductID(id), nil
}
