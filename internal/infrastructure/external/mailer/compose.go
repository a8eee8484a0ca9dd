package mailer

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/yuin/goldmark"
)

// Footer closes every summary email
const Footer = "This summary was generated and shared via Meeting Notes Summarizer"

// Message is a summary email before MIME encoding. Body is markdown.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
	Date    time.Time
}

// Compose builds an RFC 5322 multipart/alternative message and returns it with its Message-Id
func Compose(msg Message) ([]byte, string, error) {
	var buf bytes.Buffer

	var h mail.Header
	if msg.Date.IsZero() {
		msg.Date = time.Now()
	}
	h.SetDate(msg.Date)
	if err := h.GenerateMessageID(); err != nil {
		return nil, "", fmt.Errorf("generate message-id: %w", err)
	}
	messageID, err := h.MessageID()
	if err != nil {
		return nil, "", fmt.Errorf("read message-id: %w", err)
	}
	h.SetSubject(msg.Subject)

	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return nil, "", fmt.Errorf("parse from address %q: %w", msg.From, err)
	}
	h.SetAddressList("From", []*mail.Address{from})

	to, err := parseAddressList(msg.To)
	if err != nil {
		return nil, "", fmt.Errorf("parse to addresses: %w", err)
	}
	h.SetAddressList("To", to)

	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, "", fmt.Errorf("create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, "", fmt.Errorf("create inline writer: %w", err)
	}

	htmlContent, err := renderHTML(msg.Body)
	if err != nil {
		return nil, "", fmt.Errorf("render markdown to HTML: %w", err)
	}

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=utf-8", renderPlain(msg.Body)},
		{"text/html; charset=utf-8", htmlContent},
	}
	for _, p := range parts {
		var ph mail.InlineHeader
		ph.Set("Content-Type", p.contentType)
		pw, err := tw.CreatePart(ph)
		if err != nil {
			return nil, "", fmt.Errorf("create %s part: %w", p.contentType, err)
		}
		if _, err := io.WriteString(pw, p.content); err != nil {
			return nil, "", fmt.Errorf("write %s part: %w", p.contentType, err)
		}
		if err := pw.Close(); err != nil {
			return nil, "", fmt.Errorf("close %s part: %w", p.contentType, err)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, "", fmt.Errorf("close inline writer: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close mail writer: %w", err)
	}

	return buf.Bytes(), messageID, nil
}

func parseAddressList(addrs []string) ([]*mail.Address, error) {
	result := make([]*mail.Address, 0, len(addrs))
	for _, a := range addrs {
		parsed, err := mail.ParseAddress(a)
		if err != nil {
			return nil, fmt.Errorf("parse address %q: %w", a, err)
		}
		result = append(result, parsed)
	}
	return result, nil
}

// renderHTML renders the markdown summary inside a minimal, self-contained HTML document
func renderHTML(md string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html><head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; font-size: 14px; line-height: 1.5;">
<div style="max-width: 600px; margin: 0 auto;">
<h2>Meeting Summary</h2>
<div style="background: #f9f9f9; padding: 15px; border-radius: 5px;">
%s</div>
<p style="color: #666; margin-top: 20px; font-size: 12px;">%s</p>
</div>
</body></html>`, body.String(), Footer), nil
}

var (
	mdBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdHeading = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdLink    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// renderPlain strips the markdown the summaries use and appends the footer
func renderPlain(md string) string {
	s := mdLink.ReplaceAllString(md, "$1 ($2)")
	s = mdBold.ReplaceAllString(s, "$1")
	s = mdHeading.ReplaceAllString(s, "")
	return strings.TrimSpace(s) + "\n\n--\n" + Footer + "\n"
}
