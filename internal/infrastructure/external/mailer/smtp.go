package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// smtpDialTimeout is the maximum time to establish an SMTP connection
const smtpDialTimeout = 30 * time.Second

// ErrNotConfigured is returned when no SMTP server is known
var ErrNotConfigured = errors.New("email transport is not configured")

// Transport delivers a composed message
type Transport interface {
	Send(ctx context.Context, from string, recipients []string, msg []byte) error
}

// SMTPTransport delivers over SMTP, opening one connection per message
type SMTPTransport struct {
	cfg config.MailConfig
}

// NewSMTPTransport creates an SMTP transport from mail configuration
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

// Send connects, authenticates when credentials exist, and delivers msg
func (t *SMTPTransport) Send(ctx context.Context, from string, recipients []string, msg []byte) error {
	cfg := t.cfg
	if !cfg.Configured() {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	dialTimeout := smtpDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < dialTimeout {
			dialTimeout = remaining
		}
	}
	dialer := &net.Dialer{Timeout: dialTimeout}

	var conn net.Conn
	var err error
	if cfg.StartTLS {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		// Implicit TLS (port 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: cfg.Host})
	}
	if err != nil {
		return fmt.Errorf("dial SMTP %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("create SMTP client on %s: %w", addr, err)
	}
	defer client.Close()

	if err := client.Hello("localhost"); err != nil {
		return fmt.Errorf("EHLO: %w", err)
	}

	if cfg.StartTLS {
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			return fmt.Errorf("STARTTLS: %w", err)
		}
	}

	if cfg.User != "" && cfg.Password != "" {
		auth := smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("AUTH: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close DATA: %w", err)
	}

	return client.Quit()
}

// bareAddress extracts addr from "Name <addr>"
func bareAddress(s string) string {
	if n := len(s); n > 1 && s[n-1] == '>' {
		for i := n - 2; i >= 0; i-- {
			if s[i] == '<' {
				return s[i+1 : n-1]
			}
		}
	}
	return s
}
