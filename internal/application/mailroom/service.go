package mailroom

import (
	"context"
	"fmt"
	"strings"
	"time"

	workorderusecases "workdesk/internal/application/workorder/usecases"
	"workdesk/internal/domain/mailroom"
	"workdesk/internal/domain/user"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

const (
	fallbackSubject   = "(no subject)"
	fallbackBody      = "(no content)"
	usernameSuffixCap = 50
	defaultDifficulty = 1
	defaultFetchLimit = 50
	titleMaxLen       = 200
)

type RunSummary struct {
	AccountID  uint
	Account    string
	Fetched    int
	Created    int
	Duplicates int
	Failures   int
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
}

type ProcessOptions struct {
	FetchLimit int
	DryRun     bool
}

// Service polls mailbox accounts and turns each new message into a work
// order. Every fetched message ends in the processed ledger exactly once;
// a failure with one message never aborts the rest of the batch.
type Service struct {
	accountRepo   mailroom.AccountRepository
	processedRepo mailroom.ProcessedMessageRepository
	templateRepo  mailroom.ReplyTemplateRepository
	userRepo      user.Repository
	clientFactory ClientFactory
	creator       WorkOrderCreator
	sender        ReplySender
	logger        logger.Interface
}

func NewService(
	accountRepo mailroom.AccountRepository,
	processedRepo mailroom.ProcessedMessageRepository,
	templateRepo mailroom.ReplyTemplateRepository,
	userRepo user.Repository,
	clientFactory ClientFactory,
	creator WorkOrderCreator,
	sender ReplySender,
	logger logger.Interface,
) *Service {
	return &Service{
		accountRepo:   accountRepo,
		processedRepo: processedRepo,
		templateRepo:  templateRepo,
		userRepo:      userRepo,
		clientFactory: clientFactory,
		creator:       creator,
		sender:        sender,
		logger:        logger,
	}
}

// ProcessAll polls every active account. One account failing to connect
// does not stop the others.
func (s *Service) ProcessAll(ctx context.Context, opts ProcessOptions) ([]*RunSummary, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		s.logger.Errorw("failed to list mailbox accounts", "error", err)
		return nil, err
	}

	summaries := make([]*RunSummary, 0, len(accounts))
	for _, account := range accounts {
		summary, err := s.ProcessAccount(ctx, account, opts)
		if err != nil {
			s.logger.Errorw("mailbox run failed", "account", account.Name(), "error", err)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ProcessAccountByName resolves the account and runs it.
func (s *Service) ProcessAccountByName(ctx context.Context, name string, opts ProcessOptions) (*RunSummary, error) {
	account, err := s.accountRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.ProcessAccount(ctx, account, opts)
}

func (s *Service) ProcessAccount(ctx context.Context, account *mailroom.Account, opts ProcessOptions) (*RunSummary, error) {
	if !account.IsActive() {
		return nil, errors.NewValidationError("mailbox account is not active")
	}

	limit := opts.FetchLimit
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	summary := &RunSummary{
		AccountID: account.ID(),
		Account:   account.Name(),
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
	}

	client, err := s.clientFactory.Connect(ctx, account)
	if err != nil {
		s.logger.Errorw("failed to connect to mailbox", "account", account.Name(), "error", err)
		return nil, err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			s.logger.Warnw("failed to close mailbox connection", "account", account.Name(), "error", cerr)
		}
	}()

	messages, err := client.Fetch(ctx, limit)
	if err != nil {
		s.logger.Errorw("failed to fetch messages", "account", account.Name(), "error", err)
		return nil, err
	}
	summary.Fetched = len(messages)

	for _, msg := range messages {
		s.handleMessage(ctx, account, msg, opts.DryRun, summary)
	}

	summary.FinishedAt = time.Now()

	if !opts.DryRun {
		account.RecordRun(summary.FinishedAt, summary.Created+summary.Failures)
		if err := s.accountRepo.Update(ctx, account); err != nil {
			s.logger.Errorw("failed to record mailbox run", "account", account.Name(), "error", err)
		}
	}

	s.logger.Infow("mailbox run finished",
		"account", account.Name(),
		"fetched", summary.Fetched,
		"created", summary.Created,
		"duplicates", summary.Duplicates,
		"failures", summary.Failures,
		"dry_run", opts.DryRun,
	)
	return summary, nil
}

func (s *Service) handleMessage(ctx context.Context, account *mailroom.Account, msg mailroom.ParsedMessage, dryRun bool, summary *RunSummary) {
	if msg.MessageID == "" {
		// without an ID the dedup ledger cannot hold the message
		s.logger.Warnw("skipping message without Message-ID", "account", account.Name(), "subject", msg.Subject)
		summary.Failures++
		return
	}

	seen, err := s.processedRepo.Exists(ctx, account.ID(), msg.MessageID)
	if err != nil {
		s.logger.Errorw("dedup lookup failed", "account", account.Name(), "message_id", msg.MessageID, "error", err)
		summary.Failures++
		return
	}
	if seen {
		summary.Duplicates++
		return
	}

	if dryRun {
		s.logger.Infow("would create work order",
			"account", account.Name(),
			"message_id", msg.MessageID,
			"from", msg.FromAddress,
			"subject", msg.Subject,
		)
		summary.Created++
		return
	}

	result, requester, err := s.ingest(ctx, account, msg)

	outcome := mailroom.OutcomeSuccess
	note := ""
	var workOrderID *uint
	if err != nil {
		outcome = mailroom.OutcomeFailed
		note = err.Error()
		summary.Failures++
	} else {
		workOrderID = &result.WorkOrderID
		summary.Created++
	}

	entry, perr := mailroom.NewProcessedMessage(account.ID(), msg.MessageID, msg.Subject, msg.FromAddress, msg.FromName, msg.SentAt, outcome, note, workOrderID)
	if perr != nil {
		s.logger.Errorw("failed to build ledger entry", "message_id", msg.MessageID, "error", perr)
		return
	}
	if perr := s.processedRepo.Create(ctx, entry); perr != nil {
		if errors.IsConflictError(perr) || errors.IsDuplicateError(perr) {
			// another worker recorded it between our check and write
			summary.Duplicates++
			if summary.Created > 0 && err == nil {
				summary.Created--
			}
			return
		}
		s.logger.Errorw("failed to write ledger entry", "message_id", msg.MessageID, "error", perr)
	}

	if err == nil {
		s.sendAcknowledgement(ctx, account, msg, requester, result)
	}
}

// ingest resolves the requester and creates the work order.
func (s *Service) ingest(ctx context.Context, account *mailroom.Account, msg mailroom.ParsedMessage) (*workorderusecases.CreateWorkOrderResult, *user.User, error) {
	requester, err := s.resolveRequester(ctx, msg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve requester: %w", err)
	}

	title := strings.TrimSpace(msg.Subject)
	if title == "" {
		title = fallbackSubject
	}
	// Truncate on a rune boundary; a byte slice could cut a multi-byte
	// subject mid-character.
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen])
	}

	body := strings.TrimSpace(msg.Body)
	if body == "" {
		body = fallbackBody
	}

	result, err := s.creator.Execute(ctx, workorderusecases.CreateWorkOrderCommand{
		Title:       title,
		Description: body,
		TaskTypeID:  account.DefaultTaskTypeID(),
		CategoryID:  account.DefaultCategoryID(),
		Priority:    account.DefaultPriority(),
		RequesterID: requester.ID(),
		Difficulty:  defaultDifficulty,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create work order: %w", err)
	}
	return result, requester, nil
}

// resolveRequester finds the sender by address or registers them, deriving
// the username from the address local part with a numeric suffix on
// collision.
func (s *Service) resolveRequester(ctx context.Context, msg mailroom.ParsedMessage) (*user.User, error) {
	address := strings.TrimSpace(strings.ToLower(msg.FromAddress))
	if address == "" {
		return nil, fmt.Errorf("message has no sender address")
	}

	existing, err := s.userRepo.FindByEmail(ctx, address)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	username, err := s.availableUsername(ctx, address)
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(username, address, strings.TrimSpace(msg.FromName))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	s.logger.Infow("registered requester from mail", "username", username, "email", address)
	return newUser, nil
}

func (s *Service) availableUsername(ctx context.Context, address string) (string, error) {
	local := address
	if at := strings.Index(address, "@"); at > 0 {
		local = address[:at]
	}

	candidate := local
	for i := 1; i <= usernameSuffixCap; i++ {
		taken, err := s.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", local, i)
	}
	return "", fmt.Errorf("no available username for %s", address)
}

// sendAcknowledgement renders the ticket-created reply and mails it back to
// the requester. Delivery problems are logged and swallowed; the order
// already exists.
func (s *Service) sendAcknowledgement(ctx context.Context, account *mailroom.Account, msg mailroom.ParsedMessage, requester *user.User, result *workorderusecases.CreateWorkOrderResult) {
	if s.sender == nil {
		return
	}

	tmpl := s.resolveAckTemplate(ctx, account)

	subject, body := tmpl.Render(map[string]string{
		mailroom.PlaceholderTicketNumber:  result.Number,
		mailroom.PlaceholderTitle:         strings.TrimSpace(msg.Subject),
		mailroom.PlaceholderStatus:        result.Status,
		mailroom.PlaceholderPriority:      account.DefaultPriority(),
		mailroom.PlaceholderRequesterName: requester.DisplayName(),
		mailroom.PlaceholderCreatedAt:     result.CreatedAt.Format("2006-01-02 15:04"),
	})

	if err := s.sender.Send(ctx, requester.Email(), subject, body); err != nil {
		s.logger.Warnw("failed to send acknowledgement", "account", account.Name(), "to", requester.Email(), "error", err)
	}
}

// resolveAckTemplate prefers the account's pinned template, then whichever
// template is configured for the created event, then the built-in default.
// An acknowledgement always goes out for a created ticket.
func (s *Service) resolveAckTemplate(ctx context.Context, account *mailroom.Account) *mailroom.ReplyTemplate {
	if id := account.ReplyTemplateID(); id != nil {
		tmpl, err := s.templateRepo.FindByID(ctx, *id)
		if err == nil {
			return tmpl
		}
		s.logger.Warnw("pinned reply template missing", "account", account.Name(), "template_id", *id, "error", err)
	}

	tmpl, err := s.templateRepo.FindByType(ctx, mailroom.TemplateTypeCreated)
	if err == nil {
		return tmpl
	}
	if !errors.IsNotFoundError(err) {
		s.logger.Warnw("reply template lookup failed", "account", account.Name(), "error", err)
	}
	return mailroom.DefaultAcknowledgement()
}
