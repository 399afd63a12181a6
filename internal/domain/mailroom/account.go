package mailroom

import (
	"fmt"
	"strings"
	"time"
)

// Protocol selects how a mailbox account is polled.
type Protocol string

const (
	ProtocolIMAP Protocol = "imap"
	ProtocolPOP3 Protocol = "pop3"
)

func (p Protocol) IsValid() bool {
	return p == ProtocolIMAP || p == ProtocolPOP3
}

// Account is a mailbox the ingestion pipeline polls for new work orders.
// DefaultTaskTypeID and DefaultCategoryID seed every order it creates.
type Account struct {
	id                uint
	name              string
	protocol          Protocol
	host              string
	port              int
	username          string
	password          string
	useTLS            bool
	folder            string
	active            bool
	defaultTaskTypeID uint
	defaultCategoryID uint
	defaultPriority   string
	replyTemplateID   *uint
	lastRunAt         *time.Time
	processedCount    int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewAccount(
	name string,
	protocol Protocol,
	host string,
	port int,
	username, password string,
	useTLS bool,
	defaultTaskTypeID, defaultCategoryID uint,
	defaultPriority string,
) (*Account, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("account name is required")
	}
	if !protocol.IsValid() {
		return nil, fmt.Errorf("invalid protocol: %s", protocol)
	}
	if len(host) == 0 {
		return nil, fmt.Errorf("host is required")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if defaultTaskTypeID == 0 {
		return nil, fmt.Errorf("default task type is required")
	}
	if defaultCategoryID == 0 {
		return nil, fmt.Errorf("default category is required")
	}

	folder := "INBOX"
	now := time.Now()

	return &Account{
		name:              name,
		protocol:          protocol,
		host:              host,
		port:              port,
		username:          username,
		password:          password,
		useTLS:            useTLS,
		folder:            folder,
		active:            true,
		defaultTaskTypeID: defaultTaskTypeID,
		defaultCategoryID: defaultCategoryID,
		defaultPriority:   defaultPriority,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructAccount(
	id uint,
	name string,
	protocol Protocol,
	host string,
	port int,
	username, password string,
	useTLS bool,
	folder string,
	active bool,
	defaultTaskTypeID, defaultCategoryID uint,
	defaultPriority string,
	replyTemplateID *uint,
	lastRunAt *time.Time,
	processedCount int,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if !protocol.IsValid() {
		return nil, fmt.Errorf("invalid protocol: %s", protocol)
	}

	if folder == "" {
		folder = "INBOX"
	}

	return &Account{
		id:                id,
		name:              name,
		protocol:          protocol,
		host:              host,
		port:              port,
		username:          username,
		password:          password,
		useTLS:            useTLS,
		folder:            folder,
		active:            active,
		defaultTaskTypeID: defaultTaskTypeID,
		defaultCategoryID: defaultCategoryID,
		defaultPriority:   defaultPriority,
		replyTemplateID:   replyTemplateID,
		lastRunAt:         lastRunAt,
		processedCount:    processedCount,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (a *Account) ID() uint                { return a.id }
func (a *Account) Name() string            { return a.name }
func (a *Account) Protocol() Protocol      { return a.protocol }
func (a *Account) Host() string            { return a.host }
func (a *Account) Port() int               { return a.port }
func (a *Account) Username() string        { return a.username }
func (a *Account) Password() string        { return a.password }
func (a *Account) UseTLS() bool            { return a.useTLS }
func (a *Account) Folder() string          { return a.folder }
func (a *Account) IsActive() bool          { return a.active }
func (a *Account) DefaultTaskTypeID() uint { return a.defaultTaskTypeID }
func (a *Account) DefaultCategoryID() uint { return a.defaultCategoryID }
func (a *Account) DefaultPriority() string { return a.defaultPriority }
func (a *Account) ReplyTemplateID() *uint  { return a.replyTemplateID }
func (a *Account) LastRunAt() *time.Time   { return a.lastRunAt }
func (a *Account) ProcessedCount() int     { return a.processedCount }
func (a *Account) CreatedAt() time.Time    { return a.createdAt }
func (a *Account) UpdatedAt() time.Time    { return a.updatedAt }

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) SetFolder(folder string) {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = "INBOX"
	}
	a.folder = folder
	a.updatedAt = time.Now()
}

func (a *Account) SetReplyTemplate(templateID *uint) {
	a.replyTemplateID = templateID
	a.updatedAt = time.Now()
}

func (a *Account) Activate() {
	a.active = true
	a.updatedAt = time.Now()
}

func (a *Account) Deactivate() {
	a.active = false
	a.updatedAt = time.Now()
}

func (a *Account) UpdateCredentials(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	a.username = username
	if password != "" {
		a.password = password
	}
	a.updatedAt = time.Now()
	return nil
}

func (a *Account) UpdateEndpoint(host string, port int, useTLS bool) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("host is required")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	a.host = host
	a.port = port
	a.useTLS = useTLS
	a.updatedAt = time.Now()
	return nil
}

func (a *Account) UpdateDefaults(taskTypeID, categoryID uint, priority string) error {
	if taskTypeID == 0 {
		return fmt.Errorf("default task type is required")
	}
	if categoryID == 0 {
		return fmt.Errorf("default category is required")
	}
	a.defaultTaskTypeID = taskTypeID
	a.defaultCategoryID = categoryID
	a.defaultPriority = strings.TrimSpace(strings.ToLower(priority))
	a.updatedAt = time.Now()
	return nil
}

// RecordRun stamps a completed poll and adds the number of messages the
// pipeline handled, successes and failures alike.
func (a *Account) RecordRun(at time.Time, handled int) {
	a.lastRunAt = &at
	if handled > 0 {
		a.processedCount += handled
	}
	a.updatedAt = time.Now()
}

// Address returns host:port for dialing.
func (a *Account) Address() string {
	return fmt.Sprintf("%s:%d", a.host, a.port)
}
