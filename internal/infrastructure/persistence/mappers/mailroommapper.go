package mappers

import (
	"time"

	"workdesk/internal/domain/mailroom"
	"workdesk/internal/infrastructure/persistence/models"
)

// MailroomMapper handles the conversion between mailroom domain entities and persistence models.
type MailroomMapper interface {
	AccountToModel(a *mailroom.Account) *models.MailboxAccountModel
	AccountToDomain(model *models.MailboxAccountModel) (*mailroom.Account, error)
	ProcessedToModel(p *mailroom.ProcessedMessage) *models.ProcessedMessageModel
	ProcessedToDomain(model *models.ProcessedMessageModel) (*mailroom.ProcessedMessage, error)
	TemplateToModel(t *mailroom.ReplyTemplate) *models.ReplyTemplateModel
	TemplateToDomain(model *models.ReplyTemplateModel) (*mailroom.ReplyTemplate, error)
}

// MailroomMapperImpl is the concrete implementation of MailroomMapper.
type MailroomMapperImpl struct{}

// NewMailroomMapper creates a new MailroomMapper.
func NewMailroomMapper() MailroomMapper {
	return &MailroomMapperImpl{}
}

func (m *MailroomMapperImpl) AccountToModel(a *mailroom.Account) *models.MailboxAccountModel {
	model := &models.MailboxAccountModel{
		ID:                a.ID(),
		Name:              a.Name(),
		Protocol:          string(a.Protocol()),
		Host:              a.Host(),
		Port:              a.Port(),
		Username:          a.Username(),
		Password:          a.Password(),
		UseTLS:            a.UseTLS(),
		Folder:            a.Folder(),
		Active:            a.IsActive(),
		DefaultTaskTypeID: a.DefaultTaskTypeID(),
		DefaultCategoryID: a.DefaultCategoryID(),
		DefaultPriority:   a.DefaultPriority(),
		ReplyTemplateID:   a.ReplyTemplateID(),
		ProcessedCount:    a.ProcessedCount(),
		CreatedAt:         a.CreatedAt().UnixMilli(),
		UpdatedAt:         a.UpdatedAt().UnixMilli(),
	}

	if a.LastRunAt() != nil {
		lastRun := a.LastRunAt().UnixMilli()
		model.LastRunAt = &lastRun
	}

	return model
}

func (m *MailroomMapperImpl) AccountToDomain(model *models.MailboxAccountModel) (*mailroom.Account, error) {
	var lastRunAt *time.Time
	if model.LastRunAt != nil {
		t := millisToTime(*model.LastRunAt)
		lastRunAt = &t
	}

	return mailroom.ReconstructAccount(
		model.ID,
		model.Name,
		mailroom.Protocol(model.Protocol),
		model.Host,
		model.Port,
		model.Username,
		model.Password,
		model.UseTLS,
		model.Folder,
		model.Active,
		model.DefaultTaskTypeID,
		model.DefaultCategoryID,
		model.DefaultPriority,
		model.ReplyTemplateID,
		lastRunAt,
		model.ProcessedCount,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *MailroomMapperImpl) ProcessedToModel(p *mailroom.ProcessedMessage) *models.ProcessedMessageModel {
	return &models.ProcessedMessageModel{
		ID:          p.ID(),
		AccountID:   p.AccountID(),
		MessageID:   p.MessageID(),
		Subject:     p.Subject(),
		FromAddress: p.FromAddress(),
		SenderName:  p.SenderName(),
		ReceivedAt:  p.ReceivedAt().UnixMilli(),
		Outcome:     string(p.Outcome()),
		Note:        p.Note(),
		WorkOrderID: p.WorkOrderID(),
		ProcessedAt: p.ProcessedAt().UnixMilli(),
	}
}

func (m *MailroomMapperImpl) ProcessedToDomain(model *models.ProcessedMessageModel) (*mailroom.ProcessedMessage, error) {
	return mailroom.ReconstructProcessedMessage(
		model.ID,
		model.AccountID,
		model.MessageID,
		model.Subject,
		model.FromAddress,
		model.SenderName,
		millisToTime(model.ReceivedAt),
		mailroom.Outcome(model.Outcome),
		model.Note,
		model.WorkOrderID,
		millisToTime(model.ProcessedAt),
	)
}

func (m *MailroomMapperImpl) TemplateToModel(t *mailroom.ReplyTemplate) *models.ReplyTemplateModel {
	return &models.ReplyTemplateModel{
		ID:           t.ID(),
		Name:         t.Name(),
		TemplateType: string(t.TemplateType()),
		Subject:      t.Subject(),
		Body:         t.Body(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

func (m *MailroomMapperImpl) TemplateToDomain(model *models.ReplyTemplateModel) (*mailroom.ReplyTemplate, error) {
	return mailroom.ReconstructReplyTemplate(
		model.ID,
		model.Name,
		mailroom.TemplateType(model.TemplateType),
		model.Subject,
		model.Body,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
