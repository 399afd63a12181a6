package mailroom

import (
	"fmt"
	"strings"
	"time"
)

// TemplateType names the ticket lifecycle event a template replies to. At
// most one template exists per event.
type TemplateType string

const (
	TemplateTypeCreated  TemplateType = "created"
	TemplateTypeUpdated  TemplateType = "updated"
	TemplateTypeResolved TemplateType = "resolved"
	TemplateTypeClosed   TemplateType = "closed"
)

func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeCreated, TemplateTypeUpdated, TemplateTypeResolved, TemplateTypeClosed:
		return true
	}
	return false
}

// Placeholders a reply template may reference. Anything outside this set is
// left verbatim in the rendered output.
const (
	PlaceholderTicketNumber  = "ticket_number"
	PlaceholderTitle         = "title"
	PlaceholderStatus        = "status"
	PlaceholderPriority      = "priority"
	PlaceholderRequesterName = "requester_name"
	PlaceholderCreatedAt     = "created_at"
)

var allowedPlaceholders = map[string]bool{
	PlaceholderTicketNumber:  true,
	PlaceholderTitle:         true,
	PlaceholderStatus:        true,
	PlaceholderPriority:      true,
	PlaceholderRequesterName: true,
	PlaceholderCreatedAt:     true,
}

// ReplyTemplate is the auto-reply sent back to a requester when a ticket
// lifecycle event fires, one template per event type.
type ReplyTemplate struct {
	id           uint
	name         string
	templateType TemplateType
	subject      string
	body         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReplyTemplate(name string, templateType TemplateType, subject, body string) (*ReplyTemplate, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("template name is required")
	}
	if !templateType.IsValid() {
		return nil, fmt.Errorf("invalid template type: %s", templateType)
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("template subject is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("template body is required")
	}

	now := time.Now()
	return &ReplyTemplate{
		name:         name,
		templateType: templateType,
		subject:      subject,
		body:         body,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReplyTemplate(id uint, name string, templateType TemplateType, subject, body string, createdAt, updatedAt time.Time) (*ReplyTemplate, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}

	return &ReplyTemplate{
		id:           id,
		name:         name,
		templateType: templateType,
		subject:      subject,
		body:         body,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// DefaultAcknowledgement is the built-in ticket-created reply used when no
// template is configured for the event.
func DefaultAcknowledgement() *ReplyTemplate {
	now := time.Now()
	return &ReplyTemplate{
		name:         "default",
		templateType: TemplateTypeCreated,
		subject:      "[{{ticket_number}}] We received your request",
		body: "Hello {{requester_name}},\n\n" +
			"Your request \"{{title}}\" was received on {{created_at}} and logged as {{ticket_number}}. " +
			"Current status: {{status}}.\n\n" +
			"This is an automated message; replies to it are not monitored.\n",
		createdAt: now,
		updatedAt: now,
	}
}

func (t *ReplyTemplate) ID() uint                   { return t.id }
func (t *ReplyTemplate) Name() string               { return t.name }
func (t *ReplyTemplate) TemplateType() TemplateType { return t.templateType }
func (t *ReplyTemplate) Subject() string            { return t.subject }
func (t *ReplyTemplate) Body() string               { return t.body }
func (t *ReplyTemplate) CreatedAt() time.Time       { return t.createdAt }
func (t *ReplyTemplate) UpdatedAt() time.Time       { return t.updatedAt }

func (t *ReplyTemplate) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

// Render substitutes whitelisted {{placeholder}} tokens in the subject and
// body. Unknown tokens pass through untouched so a typo is visible in the
// sent mail rather than silently dropped.
func (t *ReplyTemplate) Render(values map[string]string) (subject, body string) {
	return renderTemplate(t.subject, values), renderTemplate(t.body, values)
}

func renderTemplate(text string, values map[string]string) string {
	for key, value := range values {
		if !allowedPlaceholders[key] {
			continue
		}
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}
	return text
}
