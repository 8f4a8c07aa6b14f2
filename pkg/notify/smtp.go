package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"pricetracker/pkg/domain"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
)

// SMTPOptions configure the outgoing mail server.
type SMTPOptions struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username authenticates against the server. Empty disables AUTH.
	Username string
	// Password is the credential for Username.
	Password string
	// From is the sender address put on outgoing mail.
	From string
}

// SMTPMailer delivers notifications through a plain SMTP server.
type SMTPMailer struct {
	opts SMTPOptions

	// send is swapped out in tests.
	send func(mail *email.Email) error
}

// NewSMTPMailer returns a Mailer backed by the given SMTP server.
func NewSMTPMailer(opts SMTPOptions) *SMTPMailer {
	m := &SMTPMailer{opts: opts}
	m.send = m.sendSMTP

	return m
}

func (m *SMTPMailer) sendSMTP(mail *email.Email) error {
	addr := fmt.Sprintf("%s:%d", m.opts.Host, m.opts.Port)

	var auth smtp.Auth
	if m.opts.Username != "" {
		auth = smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
	}

	if err := mail.Send(addr, auth); err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) PriceDrop(_ context.Context, product domain.Product, newPrice decimal.Decimal) error {
	body, err := renderPriceDrop(product, newPrice)
	if err != nil {
		return err
	}

	mail := email.NewEmail()
	mail.From = m.opts.From
	mail.To = []string{product.OwnerEmail}
	mail.Subject = fmt.Sprintf("Price change for one of your products: %s", product.Name)
	mail.HTML = []byte(body)

	return m.send(mail)
}

func (m *SMTPMailer) ProductAdded(_ context.Context, product domain.Product) error {
	body, err := renderProductAdded(product)
	if err != nil {
		return err
	}

	mail := email.NewEmail()
	mail.From = m.opts.From
	mail.To = []string{product.OwnerEmail}
	mail.Subject = "New product created"
	mail.HTML = []byte(body)

	return m.send(mail)
}
