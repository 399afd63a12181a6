package mail

import (
	"context"
	"fmt"
	"time"

	appmailroom "workdesk/internal/application/mailroom"
	"workdesk/internal/domain/mailroom"
	"workdesk/internal/shared/config"
	"workdesk/internal/shared/logger"
)

// ClientFactory dials mailbox accounts with the protocol they are
// configured for.
type ClientFactory struct {
	dialTimeout time.Duration
	logger      logger.Interface
}

func NewClientFactory(cfg config.MailroomConfig, log logger.Interface) *ClientFactory {
	dialTimeout := time.Duration(cfg.DialTimeoutSeconds) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = 30 * time.Second
	}
	return &ClientFactory{
		dialTimeout: dialTimeout,
		logger:      log,
	}
}

func (f *ClientFactory) Connect(ctx context.Context, account *mailroom.Account) (appmailroom.Client, error) {
	switch account.Protocol() {
	case mailroom.ProtocolIMAP:
		return dialIMAP(ctx, account, f.dialTimeout, f.logger)
	case mailroom.ProtocolPOP3:
		return dialPOP3(ctx, account, f.dialTimeout, f.logger)
	default:
		return nil, fmt.Errorf("unsupported mailbox protocol: %s", account.Protocol())
	}
}

// newestSeqNums keeps at most limit entries from the end of the set.
// Sequence numbers ascend with age, so an overfull inbox drops the oldest
// messages, not the newest.
func newestSeqNums(seqNums []uint32, limit int) []uint32 {
	if limit > 0 && len(seqNums) > limit {
		return seqNums[len(seqNums)-limit:]
	}
	return seqNums
}

// firstRetained returns the lowest POP3 message id to download so that at
// most limit of the newest messages are taken. Ids ascend with age.
func firstRetained(count, limit int) int {
	if limit > 0 && count > limit {
		return count - limit + 1
	}
	return 1
}
