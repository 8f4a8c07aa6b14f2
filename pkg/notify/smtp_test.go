package notify

import (
	"context"
	"strings"
	"testing"

	"pricetracker/pkg/domain"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
)

func testMailer(t *testing.T) (*SMTPMailer, *[]*email.Email) {
	t.Helper()

	var sent []*email.Email
	m := NewSMTPMailer(SMTPOptions{From: "alerts@pricetracker.test"})
	m.send = func(mail *email.Email) error {
		sent = append(sent, mail)

		return nil
	}

	return m, &sent
}

func TestPriceDrop(t *testing.T) {
	m, sent := testMailer(t)

	product := domain.Product{
		Name:         "Echo Dot",
		URL:          "https://www.amazon.com.br/dp/B0TEST",
		CurrentPrice: decimal.RequireFromString("324.90"),
		OwnerEmail:   "owner@example.com",
	}

	err := m.PriceDrop(context.Background(), product, decimal.RequireFromString("289.90"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("expected one email, got %d", len(*sent))
	}

	mail := (*sent)[0]
	if mail.To[0] != "owner@example.com" {
		t.Fatalf("unexpected recipient %q", mail.To[0])
	}
	if mail.From != "alerts@pricetracker.test" {
		t.Fatalf("unexpected sender %q", mail.From)
	}
	if want := "Price change for one of your products: Echo Dot"; mail.Subject != want {
		t.Fatalf("unexpected subject %q", mail.Subject)
	}

	body := string(mail.HTML)
	for _, want := range []string{"$324.90", "$289.90", "$35.00", product.URL, "Echo Dot"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestProductAdded(t *testing.T) {
	m, sent := testMailer(t)

	product := domain.Product{
		Name:         "Relógio de Parede",
		URL:          "https://www.mercadolivre.com.br/p/MLB123",
		CurrentPrice: decimal.RequireFromString("59.99"),
		OwnerEmail:   "owner@example.com",
	}

	if err := m.ProductAdded(context.Background(), product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*sent) != 1 {
		t.Fatalf("expected one email, got %d", len(*sent))
	}

	mail := (*sent)[0]
	if mail.Subject != "New product created" {
		t.Fatalf("unexpected subject %q", mail.Subject)
	}

	body := string(mail.HTML)
	for _, want := range []string{"$59.99", product.URL, "Relógio de Parede"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestPriceDropEscapesMarkup(t *testing.T) {
	m, sent := testMailer(t)

	product := domain.Product{
		Name:         `<script>alert("x")</script>`,
		URL:          "https://www.amazon.com.br/dp/B0TEST",
		CurrentPrice: decimal.RequireFromString("10.00"),
		OwnerEmail:   "owner@example.com",
	}

	if err := m.PriceDrop(context.Background(), product, decimal.RequireFromString("9.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := string((*sent)[0].HTML)
	if strings.Contains(body, "<script>") {
		t.Fatalf("product name not escaped:\n%s", body)
	}
}
