package mailroom

import (
	"fmt"
	"time"
)

// Outcome records what the pipeline did with one fetched message.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailed    Outcome = "failed"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeFailed, OutcomeDuplicate, OutcomeIgnored:
		return true
	}
	return false
}

// ProcessedMessage is the dedup ledger entry for one mailbox message.
// (accountID, messageID) is unique; a message seen twice never becomes a
// second work order.
type ProcessedMessage struct {
	id          uint
	accountID   uint
	messageID   string
	subject     string
	fromAddress string
	senderName  string
	receivedAt  time.Time
	outcome     Outcome
	note        string
	workOrderID *uint
	processedAt time.Time
}

func NewProcessedMessage(accountID uint, messageID, subject, fromAddress, senderName string, receivedAt time.Time, outcome Outcome, note string, workOrderID *uint) (*ProcessedMessage, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(messageID) == 0 {
		return nil, fmt.Errorf("message ID is required")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid outcome: %s", outcome)
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	return &ProcessedMessage{
		accountID:   accountID,
		messageID:   messageID,
		subject:     subject,
		fromAddress: fromAddress,
		senderName:  senderName,
		receivedAt:  receivedAt,
		outcome:     outcome,
		note:        note,
		workOrderID: workOrderID,
		processedAt: time.Now(),
	}, nil
}

func ReconstructProcessedMessage(
	id, accountID uint,
	messageID, subject, fromAddress, senderName string,
	receivedAt time.Time,
	outcome Outcome,
	note string,
	workOrderID *uint,
	processedAt time.Time,
) (*ProcessedMessage, error) {
	if id == 0 {
		return nil, fmt.Errorf("processed message ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}

	return &ProcessedMessage{
		id:          id,
		accountID:   accountID,
		messageID:   messageID,
		subject:     subject,
		fromAddress: fromAddress,
		senderName:  senderName,
		receivedAt:  receivedAt,
		outcome:     outcome,
		note:        note,
		workOrderID: workOrderID,
		processedAt: processedAt,
	}, nil
}

func (m *ProcessedMessage) ID() uint               { return m.id }
func (m *ProcessedMessage) AccountID() uint        { return m.accountID }
func (m *ProcessedMessage) MessageID() string      { return m.messageID }
func (m *ProcessedMessage) Subject() string        { return m.subject }
func (m *ProcessedMessage) FromAddress() string    { return m.fromAddress }
func (m *ProcessedMessage) SenderName() string     { return m.senderName }
func (m *ProcessedMessage) ReceivedAt() time.Time  { return m.receivedAt }
func (m *ProcessedMessage) Outcome() Outcome       { return m.outcome }
func (m *ProcessedMessage) Note() string           { return m.note }
func (m *ProcessedMessage) WorkOrderID() *uint     { return m.workOrderID }
func (m *ProcessedMessage) ProcessedAt() time.Time { return m.processedAt }

func (m *ProcessedMessage) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("processed message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("processed message ID cannot be zero")
	}
	m.id = id
	return nil
}
