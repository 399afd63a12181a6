package mail

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	stdmail "net/mail"
	"strings"
	"time"

	gomessage "github.com/emersion/go-message"
	gomail "github.com/emersion/go-message/mail"
	"github.com/microcosm-cc/bluemonday"
	htmlcharset "golang.org/x/net/html/charset"

	"workdesk/internal/domain/mailroom"
)

const maxBodyBytes = 128 * 1024

func init() {
	gomessage.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return htmlcharset.NewReaderLabel(charset, input)
	}
}

// Parser turns raw RFC 2822 messages into mailroom.ParsedMessage values.
// Plain text parts win over HTML; HTML-only mail is stripped to text.
type Parser struct {
	decoder   *mime.WordDecoder
	sanitizer *bluemonday.Policy
}

func NewParser() *Parser {
	return &Parser{
		decoder:   &mime.WordDecoder{},
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (p *Parser) Parse(raw []byte) (mailroom.ParsedMessage, error) {
	if len(raw) == 0 {
		return mailroom.ParsedMessage{}, fmt.Errorf("empty message")
	}

	reader, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return p.legacyParse(raw)
	}

	parsed := mailroom.ParsedMessage{
		MessageID: normalizeMessageID(reader.Header.Get("Message-Id")),
		Subject:   p.subjectFromHeader(&reader.Header),
		SentAt:    p.dateFromHeader(&reader.Header),
	}
	parsed.FromAddress, parsed.FromName = p.fromHeader(&reader.Header)

	body, isHTML := p.readBodyParts(reader)
	if body == "" {
		// Structured parsing found no usable part; read the flat body.
		legacy, err := p.legacyParse(raw)
		if err == nil {
			body = legacy.Body
		}
	} else if isHTML {
		body = p.stripHTML(body)
	}
	parsed.Body = strings.TrimSpace(body)

	return parsed, nil
}

// legacyParse handles messages go-message refuses, reading headers and the
// flat body with net/mail.
func (p *Parser) legacyParse(raw []byte) (mailroom.ParsedMessage, error) {
	reader, err := stdmail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return mailroom.ParsedMessage{}, fmt.Errorf("failed to parse message: %w", err)
	}

	parsed := mailroom.ParsedMessage{
		MessageID: normalizeMessageID(reader.Header.Get("Message-Id")),
		Subject:   p.decodeHeader(reader.Header.Get("Subject")),
		SentAt:    time.Now(),
	}
	if date, err := reader.Header.Date(); err == nil {
		parsed.SentAt = date
	}
	parsed.FromAddress, parsed.FromName = p.parseAddress(reader.Header.Get("From"))

	body, err := io.ReadAll(io.LimitReader(reader.Body, maxBodyBytes))
	if err == nil {
		text := string(body)
		if looksLikeHTML(reader.Header.Get("Content-Type")) {
			text = p.stripHTML(text)
		}
		parsed.Body = strings.TrimSpace(text)
	}

	return parsed, nil
}

func (p *Parser) subjectFromHeader(header *gomail.Header) string {
	if subject, err := header.Subject(); err == nil {
		return subject
	}
	return p.decodeHeader(header.Get("Subject"))
}

func (p *Parser) dateFromHeader(header *gomail.Header) time.Time {
	if date, err := header.Date(); err == nil && !date.IsZero() {
		return date
	}
	return time.Now()
}

func (p *Parser) fromHeader(header *gomail.Header) (address, name string) {
	if list, err := header.AddressList("From"); err == nil && len(list) > 0 {
		return strings.TrimSpace(list[0].Address), strings.TrimSpace(list[0].Name)
	}
	return p.parseAddress(header.Get("From"))
}

// readBodyParts walks the MIME tree and picks the first text/plain part,
// falling back to the first text/html part.
func (p *Parser) readBodyParts(reader *gomail.Reader) (body string, isHTML bool) {
	var plain, html string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		header, ok := part.Header.(*gomail.InlineHeader)
		if !ok {
			continue
		}

		mediaType, _, err := header.ContentType()
		if err != nil {
			mediaType = "text/plain"
		}
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))

		data, err := io.ReadAll(io.LimitReader(part.Body, maxBodyBytes))
		if err != nil || len(data) == 0 {
			continue
		}

		switch {
		case strings.HasPrefix(mediaType, "text/plain"):
			if plain == "" {
				plain = string(data)
			}
		case strings.HasPrefix(mediaType, "text/html"):
			if html == "" {
				html = string(data)
			}
		default:
			if plain == "" && html == "" {
				plain = string(data)
			}
		}
	}

	if plain != "" {
		return plain, false
	}
	return html, html != ""
}

func (p *Parser) stripHTML(body string) string {
	text := p.sanitizer.Sanitize(body)
	// Collapse the whitespace runs tag removal leaves behind.
	return strings.Join(strings.Fields(text), " ")
}

func (p *Parser) decodeHeader(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if decoded, err := p.decoder.DecodeHeader(value); err == nil {
		return decoded
	}
	return value
}

func (p *Parser) parseAddress(value string) (address, name string) {
	value = p.decodeHeader(value)
	if value == "" {
		return "", ""
	}
	if addr, err := stdmail.ParseAddress(value); err == nil {
		return strings.TrimSpace(addr.Address), strings.TrimSpace(addr.Name)
	}
	return strings.TrimSpace(value), ""
}

func looksLikeHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "text/html")
}

func normalizeMessageID(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, "<>")
	value = strings.Trim(value, "\"")
	return strings.TrimSpace(value)
}
