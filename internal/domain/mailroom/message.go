package mailroom

import "time"

// ParsedMessage is a fetched mailbox message after decoding, ready for the
// ingestion pipeline. Raw wire details stay in the infrastructure layer.
type ParsedMessage struct {
	MessageID   string
	Subject     string
	FromAddress string
	FromName    string
	Body        string
	SentAt      time.Time
}
