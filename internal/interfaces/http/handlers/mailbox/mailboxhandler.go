package mailbox

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appmailroom "workdesk/internal/application/mailroom"
	"workdesk/internal/domain/mailroom"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
	"workdesk/internal/shared/utils"
)

// PipelineRunner triggers a one-shot ingestion run for an account.
type PipelineRunner interface {
	ProcessAccount(ctx context.Context, account *mailroom.Account, opts appmailroom.ProcessOptions) (*appmailroom.RunSummary, error)
}

type MailboxHandler struct {
	accountRepo mailroom.AccountRepository
	runner      PipelineRunner
	logger      logger.Interface
}

func NewMailboxHandler(accountRepo mailroom.AccountRepository, runner PipelineRunner) *MailboxHandler {
	return &MailboxHandler{
		accountRepo: accountRepo,
		runner:      runner,
		logger:      logger.NewLogger(),
	}
}

// CreateMailbox handles POST /admin/mailboxes
func (h *MailboxHandler) CreateMailbox(c *gin.Context) {
	var req CreateMailboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create mailbox", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	useTLS := true
	if req.UseTLS != nil {
		useTLS = *req.UseTLS
	}

	account, err := mailroom.NewAccount(
		req.Name,
		mailroom.Protocol(req.Protocol),
		req.Host,
		req.Port,
		req.Username, req.Password,
		useTLS,
		req.DefaultTaskTypeID, req.DefaultCategoryID,
		req.DefaultPriority,
	)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}
	if req.Folder != "" {
		account.SetFolder(req.Folder)
	}
	if req.ReplyTemplateID != nil {
		account.SetReplyTemplate(req.ReplyTemplateID)
	}

	if err := h.accountRepo.Create(c.Request.Context(), account); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMailboxResponse(account), "Mailbox account created successfully")
}

// GetMailbox handles GET /admin/mailboxes/:id
func (h *MailboxHandler) GetMailbox(c *gin.Context) {
	account, err := h.findAccount(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMailboxResponse(account))
}

// ListMailboxes handles GET /admin/mailboxes
func (h *MailboxHandler) ListMailboxes(c *gin.Context) {
	accounts, err := h.accountRepo.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMailboxResponses(accounts))
}

// UpdateMailbox handles PUT /admin/mailboxes/:id
func (h *MailboxHandler) UpdateMailbox(c *gin.Context) {
	account, err := h.findAccount(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMailboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update mailbox", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	useTLS := account.UseTLS()
	if req.UseTLS != nil {
		useTLS = *req.UseTLS
	}
	if err := account.UpdateEndpoint(req.Host, req.Port, useTLS); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}
	if err := account.UpdateCredentials(req.Username, req.Password); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}
	if err := account.UpdateDefaults(req.DefaultTaskTypeID, req.DefaultCategoryID, req.DefaultPriority); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}
	if req.Folder != "" {
		account.SetFolder(req.Folder)
	}
	account.SetReplyTemplate(req.ReplyTemplateID)
	if req.Active != nil {
		if *req.Active {
			account.Activate()
		} else {
			account.Deactivate()
		}
	}

	if err := h.accountRepo.Update(c.Request.Context(), account); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mailbox account updated successfully", toMailboxResponse(account))
}

// DeleteMailbox handles DELETE /admin/mailboxes/:id
func (h *MailboxHandler) DeleteMailbox(c *gin.Context) {
	id, err := parseMailboxID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.accountRepo.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RunMailbox handles POST /admin/mailboxes/:id/run
func (h *MailboxHandler) RunMailbox(c *gin.Context) {
	account, err := h.findAccount(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RunMailboxRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	summary, err := h.runner.ProcessAccount(c.Request.Context(), account, appmailroom.ProcessOptions{DryRun: req.DryRun})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mailbox run finished", summary)
}

func (h *MailboxHandler) findAccount(c *gin.Context) (*mailroom.Account, error) {
	id, err := parseMailboxID(c)
	if err != nil {
		return nil, err
	}
	return h.accountRepo.FindByID(c.Request.Context(), id)
}

func parseMailboxID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid mailbox account ID")
	}
	return uint(id), nil
}
