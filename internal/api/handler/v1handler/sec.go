package v1handler

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"pricetracker/internal/config"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// identityKey is the echo context key under which the authenticated caller is
// stored.
const identityKey = "identity"

// SecHandlerOptions configures bearer token verification for v1 endpoints.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens must be signed
	// against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application
// configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// Identity describes the authenticated caller of a request.
type Identity struct {
	// UID is the token subject, used to scope all product operations.
	UID string
	// Email is the notification target carried in the token's email claim.
	Email string
}

// tokenClaims are the JWT claims the API cares about.
type tokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// SecHandler verifies RS256 bearer tokens and attaches the caller identity to
// the request.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a handler ready
// to verify tokens.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Middleware returns an echo middleware that rejects requests without a valid
// bearer token and stores the caller Identity in the context.
func (s *SecHandler) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims := &tokenClaims{}
			token, err := jwt.ParseWithClaims(raw, claims,
				func(*jwt.Token) (any, error) { return s.key, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
			if err != nil {
				return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
			}
			if !token.Valid || claims.Subject == "" {
				return serrors.With(serrors.ErrUnauthorized, "invalid bearer token")
			}

			c.Set(identityKey, Identity{UID: claims.Subject, Email: claims.Email})

			req := c.Request()
			c.SetRequest(req.WithContext(
				logger.WithFields(req.Context(), zap.String("ownerUID", claims.Subject))))

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "missing authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", serrors.With(serrors.ErrUnauthorized, "authorization header is not a bearer token")
	}

	return strings.TrimPrefix(header, prefix), nil
}

// GetIdentity returns the caller identity stored by the security middleware.
func GetIdentity(c echo.Context) Identity {
	id, _ := c.Get(identityKey).(Identity)

	return id
}
