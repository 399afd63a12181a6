package mailbox

import (
	"time"

	"workdesk/internal/domain/mailroom"
)

type CreateMailboxRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Protocol          string `json:"protocol" binding:"required,oneof=imap pop3"`
	Host              string `json:"host" binding:"required,max=255"`
	Port              int    `json:"port" binding:"required,min=1,max=65535"`
	Username          string `json:"username" binding:"required,max=255"`
	Password          string `json:"password" binding:"required"`
	UseTLS            *bool  `json:"use_tls,omitempty"`
	Folder            string `json:"folder,omitempty" binding:"max=100"`
	DefaultTaskTypeID uint   `json:"default_task_type_id" binding:"required"`
	DefaultCategoryID uint   `json:"default_category_id" binding:"required"`
	DefaultPriority   string `json:"default_priority" binding:"required,oneof=low medium high urgent"`
	ReplyTemplateID   *uint  `json:"reply_template_id,omitempty"`
}

type UpdateMailboxRequest struct {
	Host              string `json:"host" binding:"required,max=255"`
	Port              int    `json:"port" binding:"required,min=1,max=65535"`
	Username          string `json:"username" binding:"required,max=255"`
	Password          string `json:"password,omitempty"`
	UseTLS            *bool  `json:"use_tls,omitempty"`
	Folder            string `json:"folder,omitempty" binding:"max=100"`
	Active            *bool  `json:"active,omitempty"`
	DefaultTaskTypeID uint   `json:"default_task_type_id" binding:"required"`
	DefaultCategoryID uint   `json:"default_category_id" binding:"required"`
	DefaultPriority   string `json:"default_priority" binding:"required,oneof=low medium high urgent"`
	ReplyTemplateID   *uint  `json:"reply_template_id,omitempty"`
}

type RunMailboxRequest struct {
	DryRun bool `json:"dry_run"`
}

// MailboxResponse is the account view returned to admins. The password
// never leaves the service.
type MailboxResponse struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Protocol          string     `json:"protocol"`
	Host              string     `json:"host"`
	Port              int        `json:"port"`
	Username          string     `json:"username"`
	UseTLS            bool       `json:"use_tls"`
	Folder            string     `json:"folder"`
	Active            bool       `json:"active"`
	DefaultTaskTypeID uint       `json:"default_task_type_id"`
	DefaultCategoryID uint       `json:"default_category_id"`
	DefaultPriority   string     `json:"default_priority"`
	ReplyTemplateID   *uint      `json:"reply_template_id,omitempty"`
	LastRunAt         *time.Time `json:"last_run_at,omitempty"`
	ProcessedCount    int        `json:"processed_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toMailboxResponse(account *mailroom.Account) MailboxResponse {
	return MailboxResponse{
		ID:                account.ID(),
		Name:              account.Name(),
		Protocol:          string(account.Protocol()),
		Host:              account.Host(),
		Port:              account.Port(),
		Username:          account.Username(),
		UseTLS:            account.UseTLS(),
		Folder:            account.Folder(),
		Active:            account.IsActive(),
		DefaultTaskTypeID: account.DefaultTaskTypeID(),
		DefaultCategoryID: account.DefaultCategoryID(),
		DefaultPriority:   account.DefaultPriority(),
		ReplyTemplateID:   account.ReplyTemplateID(),
		LastRunAt:         account.LastRunAt(),
		ProcessedCount:    account.ProcessedCount(),
		CreatedAt:         account.CreatedAt(),
		UpdatedAt:         account.UpdatedAt(),
	}
}

func toMailboxResponses(accounts []*mailroom.Account) []MailboxResponse {
	responses := make([]MailboxResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toMailboxResponse(account))
	}
	return responses
}
