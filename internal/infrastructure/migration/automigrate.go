package migration

import (
	"workdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model the schema needs.
// Keep this list in sync when a new table is added.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.WorkOrderModel{},
		&models.WorkOrderCommentModel{},
		&models.TaskTypeModel{},
		&models.TaskCategoryModel{},
		&models.UserModel{},
		&models.ScoreProfileModel{},
		&models.MailboxAccountModel{},
		&models.ProcessedMessageModel{},
		&models.ReplyTemplateModel{},
		&models.NumberSequenceModel{},
	}
}
