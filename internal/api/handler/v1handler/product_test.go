package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pricetracker/internal/api/handler/v1handler"
	mockproduct "pricetracker/internal/product/mock"
	"pricetracker/pkg/domain"
	"pricetracker/pkg/logger"
	"pricetracker/pkg/scrape"
	"pricetracker/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

const (
	testUID   = "user-123"
	testEmail = "user@example.com"
)

// testEnv bundles the echo engine under test with its mocked service and a
// token signer.
type testEnv struct {
	products *mockproduct.MockProducts
	echo     *echo.Echo
	key      *rsa.PrivateKey
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("could not generate RSA key: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("could not marshal public key: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	secHandler, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{
		PublicKey: string(pubPEM),
	})
	if err != nil {
		t.Fatalf("could not create sec handler: %v", err)
	}

	ctrl := gomock.NewController(t)
	products := mockproduct.NewMockProducts(ctrl)

	e := echo.New()
	e.HTTPErrorHandler = v1handler.ErrorHandler()
	g := e.Group("/v1", secHandler.Middleware())
	v1handler.New(v1handler.Deps{Products: products}).Register(g)

	return &testEnv{products: products, echo: e, key: key}
}

// token signs an RS256 token for the given subject and email claim.
func (env *testEnv) token(t *testing.T, subject, email string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat": jwt.NewNumericDate(time.Now()),
	}
	if email != "" {
		claims["email"] = email
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(env.key)
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}

	return signed
}

func (env *testEnv) request(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

func testDomainProduct() domain.Product {
	return domain.Product{
		ID:            domain.ProductID(uuid.New()),
		URL:           "https://www.amazon.com.br/dp/B0TEST",
		Name:          "Echo Dot",
		CurrentPrice:  decimal.RequireFromString("324.90"),
		OwnerUID:      testUID,
		OwnerEmail:    testEmail,
		LastCheckedAt: time.Now().UTC(),
		CreatedAt:     time.Now().UTC(),
	}
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	p := testDomainProduct()

	env.products.EXPECT().Create(gomock.Any(), testUID, testEmail, p.URL).Return(&p, nil)

	rec := env.request(t, http.MethodPost, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour),
		`{"url":"`+p.URL+`"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got v1handler.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if got.ID != p.ID.String() || got.Name != "Echo Dot" {
		t.Fatalf("unexpected product: %+v", got)
	}
	if got.CurrentPrice != "324.90" {
		t.Fatalf("currentPrice = %q", got.CurrentPrice)
	}
	if got.UpdatedAt != nil {
		t.Fatalf("updatedAt should be omitted for never-updated products")
	}
}

func TestCreateProduct_MissingURL(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour), `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateProduct_NoEmailClaim(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/v1/products",
		env.token(t, testUID, "", time.Hour),
		`{"url":"https://www.amazon.com.br/dp/B0TEST"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateProduct_UnsupportedDomain(t *testing.T) {
	env := newTestEnv(t)

	env.products.EXPECT().Create(gomock.Any(), testUID, testEmail, gomock.Any()).
		Return(nil, serrors.With(scrape.ErrUnsupportedDomain, "no extractor for domain %q", "example.com"))

	rec := env.request(t, http.MethodPost, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour),
		`{"url":"https://example.com/x"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var body v1handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if !strings.Contains(body.Error, "example.com") {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestCreateProduct_NavigationFailureIsBadGateway(t *testing.T) {
	env := newTestEnv(t)

	env.products.EXPECT().Create(gomock.Any(), testUID, testEmail, gomock.Any()).
		Return(nil, serrors.With(scrape.ErrNavigationFailed, "status 503"))

	rec := env.request(t, http.MethodPost, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour),
		`{"url":"https://www.amazon.com.br/dp/B0TEST"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	p := testDomainProduct()

	env.products.EXPECT().List(gomock.Any(), testUID).Return([]domain.Product{p}, nil)

	rec := env.request(t, http.MethodGet, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got v1handler.ProductList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ID != p.ID.String() {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestListProducts_Empty(t *testing.T) {
	env := newTestEnv(t)

	env.products.EXPECT().List(gomock.Any(), testUID).Return(nil, nil)

	rec := env.request(t, http.MethodGet, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	// items must be an array, not null
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	p := testDomainProduct()

	env.products.EXPECT().Get(gomock.Any(), testUID, p.ID).Return(&p, nil)

	rec := env.request(t, http.MethodGet, "/v1/products/"+p.ID.String(),
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := domain.ProductID(uuid.New())

	env.products.EXPECT().Get(gomock.Any(), testUID, id).
		Return(nil, serrors.With(serrors.ErrNotFound, "product not found"))

	rec := env.request(t, http.MethodGet, "/v1/products/"+id.String(),
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/v1/products/not-a-uuid",
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	id := domain.ProductID(uuid.New())

	env.products.EXPECT().Delete(gomock.Any(), testUID, id).Return(nil)

	rec := env.request(t, http.MethodDelete, "/v1/products/"+id.String(),
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDeleteAllProducts(t *testing.T) {
	env := newTestEnv(t)

	env.products.EXPECT().DeleteAll(gomock.Any(), testUID).Return(int64(2), nil)

	rec := env.request(t, http.MethodDelete, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got v1handler.DeletedCount
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if got.Deleted != 2 {
		t.Fatalf("deleted = %d", got.Deleted)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	env := newTestEnv(t)

	env.products.EXPECT().List(gomock.Any(), testUID).
		Return(nil, serrors.With(serrors.ErrInternal, "pool exhausted on node db-3"))

	rec := env.request(t, http.MethodGet, "/v1/products",
		env.token(t, testUID, testEmail, time.Hour), "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db-3") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
}
