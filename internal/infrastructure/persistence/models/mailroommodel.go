package models

type MailboxAccountModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;size:100;not null"`
	Protocol          string `gorm:"size:10;not null"`
	Host              string `gorm:"size:255;not null"`
	Port              int    `gorm:"not null"`
	Username          string `gorm:"size:255;not null"`
	Password          string `gorm:"size:255;not null"`
	UseTLS            bool   `gorm:"not null;default:true"`
	Folder            string `gorm:"size:100;not null;default:INBOX"`
	Active            bool   `gorm:"not null;default:true;index"`
	DefaultTaskTypeID uint   `gorm:"not null"`
	DefaultCategoryID uint   `gorm:"not null"`
	DefaultPriority   string `gorm:"size:20;not null"`
	ReplyTemplateID   *uint
	LastRunAt         *int64
	ProcessedCount    int   `gorm:"not null;default:0"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (MailboxAccountModel) TableName() string {
	return "mailbox_accounts"
}

type ProcessedMessageModel struct {
	ID          uint   `gorm:"primaryKey"`
	AccountID   uint   `gorm:"not null;uniqueIndex:idx_account_message"`
	MessageID   string `gorm:"size:255;not null;uniqueIndex:idx_account_message"`
	Subject     string `gorm:"size:255"`
	FromAddress string `gorm:"size:255"`
	SenderName  string `gorm:"size:255"`
	ReceivedAt  int64  `gorm:"not null"`
	Outcome     string `gorm:"size:20;not null;index"`
	Note        string `gorm:"size:500"`
	WorkOrderID *uint  `gorm:"index"`
	ProcessedAt int64  `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ProcessedMessageModel) TableName() string {
	return "processed_messages"
}

type ReplyTemplateModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	TemplateType string `gorm:"uniqueIndex;size:20;not null"`
	Subject      string `gorm:"size:255;not null"`
	Body         string `gorm:"type:text;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReplyTemplateModel) TableName() string {
	return "reply_templates"
}
