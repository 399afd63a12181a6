package mailroom

import (
	"context"

	workorderusecases "workdesk/internal/application/workorder/usecases"
	"workdesk/internal/domain/mailroom"
)

// Client is a connected mailbox session. Fetch returns at most limit unseen
// messages, already parsed; implementations mark returned messages as seen
// or delete them per protocol convention.
type Client interface {
	Fetch(ctx context.Context, limit int) ([]mailroom.ParsedMessage, error)
	Close() error
}

// ClientFactory dials the account's server with the protocol it is
// configured for.
type ClientFactory interface {
	Connect(ctx context.Context, account *mailroom.Account) (Client, error)
}

// ReplySender delivers the rendered acknowledgement mail.
type ReplySender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// WorkOrderCreator is the pipeline's handle on ticket creation. The live
// wiring uses the create work order use case; dry runs swap in NoopCreator.
type WorkOrderCreator interface {
	Execute(ctx context.Context, cmd workorderusecases.CreateWorkOrderCommand) (*workorderusecases.CreateWorkOrderResult, error)
}

// NoopCreator satisfies WorkOrderCreator without touching storage.
type NoopCreator struct{}

func (NoopCreator) Execute(ctx context.Context, cmd workorderusecases.CreateWorkOrderCommand) (*workorderusecases.CreateWorkOrderResult, error) {
	return &workorderusecases.CreateWorkOrderResult{Number: "WO-DRYRUN"}, nil
}
