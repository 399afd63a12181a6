package routes

import (
	"github.com/gin-gonic/gin"

	mailboxhandlers "workdesk/internal/interfaces/http/handlers/mailbox"
)

type MailboxRouteConfig struct {
	MailboxHandler *mailboxhandlers.MailboxHandler
}

func SetupMailboxRoutes(engine *gin.Engine, config *MailboxRouteConfig) {
	mailboxes := engine.Group("/admin/mailboxes")
	{
		mailboxes.POST("", config.MailboxHandler.CreateMailbox)
		mailboxes.GET("", config.MailboxHandler.ListMailboxes)

		mailboxes.POST("/:id/run", config.MailboxHandler.RunMailbox)

		mailboxes.GET("/:id", config.MailboxHandler.GetMailbox)
		mailboxes.PUT("/:id", config.MailboxHandler.UpdateMailbox)
		mailboxes.DELETE("/:id", config.MailboxHandler.DeleteMailbox)
	}
}
