package mailer

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readParts decodes a composed message into its content types and bodies
func readParts(t *testing.T, raw []byte) (*mail.Header, map[string]string) {
	t.Helper()

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	require.NoError(t, err)

	parts := make(map[string]string)
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		ct, _, err := h.ContentType()
		require.NoError(t, err)
		body, err := io.ReadAll(p.Body)
		require.NoError(t, err)
		parts[ct] = strings.ReplaceAll(string(body), "\r\n", "\n")
	}
	return &mr.Header, parts
}

func TestCompose(t *testing.T) {
	raw, messageID, err := Compose(Message{
		From:    "Notes Bot <bot@example.com>",
		To:      []string{"ann@example.com", "bob@example.com"},
		Subject: "Weekly Sync",
		Body:    "## Meeting Summary\n\n* **Topic**: Sync\n* We decided to ship\n",
		Date:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, messageID)

	h, parts := readParts(t, raw)

	subject, err := h.Subject()
	require.NoError(t, err)
	assert.Equal(t, "Weekly Sync", subject)

	to, err := h.AddressList("To")
	require.NoError(t, err)
	require.Len(t, to, 2)
	assert.Equal(t, "bob@example.com", to[1].Address)

	id, err := h.MessageID()
	require.NoError(t, err)
	assert.Equal(t, messageID, id)

	plain := parts["text/plain"]
	assert.Contains(t, plain, "Meeting Summary\n\n* Topic: Sync")
	assert.True(t, strings.HasSuffix(plain, Footer+"\n"))

	html := parts["text/html"]
	assert.Contains(t, html, "<h2>Meeting Summary</h2>")
	assert.Contains(t, html, "<strong>Topic</strong>")
	assert.Contains(t, html, "<li>We decided to ship</li>")
	assert.Contains(t, html, Footer)
}

func TestCompose_InvalidAddresses(t *testing.T) {
	_, _, err := Compose(Message{From: "not-an-email", To: []string{"a@example.com"}})
	assert.Error(t, err)

	_, _, err = Compose(Message{From: "bot@example.com", To: []string{"nope"}})
	assert.Error(t, err)
}

func TestRenderPlain(t *testing.T) {
	got := renderPlain("# Title\n\nSee [docs](https://example.com) and **bold**.\n\n1. Review")
	assert.Equal(t, "Title\n\nSee docs (https://example.com) and bold.\n\n1. Review\n\n--\n"+Footer+"\n", got)
}
