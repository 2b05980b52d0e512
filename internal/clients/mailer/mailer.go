package mailer

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/zafesys/suite/pkg/config"
)

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Enabled reports whether an SMTP host and at least one alert recipient are set.
func (c *Client) Enabled() bool {
	return c.cfg.Host != "" && len(c.cfg.AlertsTo) > 0
}

// SendAlert mails an operational alert to the configured recipients.
func (c *Client) SendAlert(subject, body string) error {
	if !c.Enabled() {
		return nil
	}

	return c.Send(subject, body, c.cfg.AlertsTo)
}

func (c *Client) Message(subject, body string, recipients []string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return msg
}

func (c *Client) Send(subject, body string, recipients []string) error {
	err := c.dialer.DialAndSend(c.Message(subject, body, recipients))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
