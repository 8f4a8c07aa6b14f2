// Package v1handler implements the HTTP handlers behind the v1 API routes.
package v1handler

import (
	"errors"
	"net/http"

	"pricetracker/internal/product"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/scrape"
	"pricetracker/pkg/serrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps holds the collaborators the handlers delegate to.
type Deps struct {
	Products product.Products
}

// Handler serves the v1 product routes.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches all v1 routes to the given group. The security middleware
// is expected to already be installed on the group.
func (h *Handler) Register(g *echo.Group) {
	g.POST("/products", h.CreateProduct)
	g.GET("/products", h.ListProducts)
	g.DELETE("/products", h.DeleteAllProducts)
	g.GET("/products/:id", h.GetProduct)
	g.DELETE("/products/:id", h.DeleteProduct)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusOf maps an error to the HTTP status to respond with. Scrape failures
// caused by the submitted page map to 400 since the caller picked the URL;
// browser and navigation failures are treated as an upstream problem.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest),
		errors.Is(err, scrape.ErrUnsupportedDomain),
		errors.Is(err, scrape.ErrNameNotFound),
		errors.Is(err, scrape.ErrPriceNotFound),
		errors.Is(err, scrape.ErrPriceUnparsable):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scrape.ErrNavigationFailed),
		errors.Is(err, scrape.ErrBrowserUnavailable),
		errors.Is(err, serrors.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler converts errors returned by handlers and middlewares into JSON
// responses. Internal failure details are logged, never exposed.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusOf(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = http.StatusText(status)
		}

		if status >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed", zap.Error(err))
			message = http.StatusText(status)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)

			return
		}

		_ = c.JSON(status, ErrorResponse{Error: message})
	}
}
