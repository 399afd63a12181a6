package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_PlainText(t *testing.T) {
	raw := strings.Join([]string{
		"From: Dana Keller <dana@example.com>",
		"To: support@example.com",
		"Subject: Broken projector in room 204",
		"Message-Id: <abc-123@example.com>",
		"Date: Mon, 02 Jan 2006 15:04:05 -0700",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"The projector will not turn on.",
		"",
	}, "\r\n")

	parser := NewParser()
	parsed, err := parser.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "abc-123@example.com", parsed.MessageID)
	assert.Equal(t, "Broken projector in room 204", parsed.Subject)
	assert.Equal(t, "dana@example.com", parsed.FromAddress)
	assert.Equal(t, "Dana Keller", parsed.FromName)
	assert.Equal(t, "The projector will not turn on.", parsed.Body)
	assert.Equal(t, 2006, parsed.SentAt.Year())
}

func TestParser_MultipartPrefersPlain(t *testing.T) {
	raw := strings.Join([]string{
		"From: dana@example.com",
		"Subject: Multipart request",
		"Message-Id: <multi-1@example.com>",
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=XYZ",
		"",
		"--XYZ",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<html><body><b>HTML body</b></body></html>",
		"--XYZ",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Plain body",
		"--XYZ--",
		"",
	}, "\r\n")

	parser := NewParser()
	parsed, err := parser.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Plain body", parsed.Body)
}

func TestParser_HTMLOnlyIsStripped(t *testing.T) {
	raw := strings.Join([]string{
		"From: dana@example.com",
		"Subject: HTML only",
		"Message-Id: <html-1@example.com>",
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=XYZ",
		"",
		"--XYZ",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<html><body><p>The <b>printer</b> is jammed.</p></body></html>",
		"--XYZ--",
		"",
	}, "\r\n")

	parser := NewParser()
	parsed, err := parser.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "The printer is jammed.", parsed.Body)
	assert.NotContains(t, parsed.Body, "<")
}

func TestParser_EncodedSubject(t *testing.T) {
	raw := strings.Join([]string{
		"From: dana@example.com",
		"Subject: =?utf-8?q?Caf=C3=A9_kaputt?=",
		"Message-Id: <enc-1@example.com>",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Espresso machine down.",
		"",
	}, "\r\n")

	parser := NewParser()
	parsed, err := parser.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Café kaputt", parsed.Subject)
}

func TestParser_MissingHeaders(t *testing.T) {
	raw := strings.Join([]string{
		"From: dana@example.com",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"No subject, no message id.",
		"",
	}, "\r\n")

	parser := NewParser()
	parsed, err := parser.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Empty(t, parsed.MessageID)
	assert.Empty(t, parsed.Subject)
	assert.Equal(t, "No subject, no message id.", parsed.Body)
	// Missing Date falls back to ingestion time.
	assert.False(t, parsed.SentAt.IsZero())
}

func TestParser_EmptyInput(t *testing.T) {
	parser := NewParser()
	_, err := parser.Parse(nil)
	assert.Error(t, err)
}

func TestNormalizeMessageID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<id@example.com>", "id@example.com"},
		{"  <id@example.com>  ", "id@example.com"},
		{`"id@example.com"`, "id@example.com"},
		{"id@example.com", "id@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeMessageID(tt.in))
	}
}
