package mailroom

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uint) (*Account, error)
	FindByName(ctx context.Context, name string) (*Account, error)
	ListActive(ctx context.Context) ([]*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id uint) error
}

type ProcessedMessageRepository interface {
	// Create persists a ledger entry. The (accountID, messageID) pair is
	// unique; inserting a duplicate returns a conflict error.
	Create(ctx context.Context, message *ProcessedMessage) error
	Exists(ctx context.Context, accountID uint, messageID string) (bool, error)
	FindByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]*ProcessedMessage, error)
	CountByAccountID(ctx context.Context, accountID uint) (int64, error)
}

type ReplyTemplateRepository interface {
	// Create persists a template. One template exists per type; inserting a
	// second for the same event returns a conflict error.
	Create(ctx context.Context, template *ReplyTemplate) error
	FindByID(ctx context.Context, id uint) (*ReplyTemplate, error)
	FindByType(ctx context.Context, templateType TemplateType) (*ReplyTemplate, error)
	List(ctx context.Context) ([]*ReplyTemplate, error)
	Update(ctx context.Context, template *ReplyTemplate) error
	Delete(ctx context.Context, id uint) error
}
