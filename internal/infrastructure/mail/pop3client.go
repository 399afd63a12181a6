package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/knadh/go-pop3"

	"workdesk/internal/domain/mailroom"
	"workdesk/internal/shared/logger"
)

// POP3Client retrieves messages sequentially. POP3 has no seen flag, so the
// processed-message ledger is the only dedup barrier for these accounts.
type POP3Client struct {
	conn   *pop3.Conn
	parser *Parser
	logger logger.Interface
}

func dialPOP3(ctx context.Context, account *mailroom.Account, dialTimeout time.Duration, log logger.Interface) (*POP3Client, error) {
	client := pop3.New(pop3.Opt{
		Host:        account.Host(),
		Port:        account.Port(),
		TLSEnabled:  account.UseTLS(),
		DialTimeout: dialTimeout,
	})

	conn, err := client.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", account.Address(), err)
	}

	if err := conn.Auth(account.Username(), account.Password()); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("pop3 auth failed: %w", err)
	}

	return &POP3Client{
		conn:   conn,
		parser: NewParser(),
		logger: log,
	}, nil
}

func (c *POP3Client) Fetch(ctx context.Context, limit int) ([]mailroom.ParsedMessage, error) {
	count, _, err := c.conn.Stat()
	if err != nil {
		return nil, fmt.Errorf("pop3 stat failed: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	start := firstRetained(count, limit)

	messages := make([]mailroom.ParsedMessage, 0, count-start+1)
	for id := start; id <= count; id++ {
		if err := ctx.Err(); err != nil {
			return messages, err
		}

		buf, err := c.conn.RetrRaw(id)
		if err != nil {
			c.logger.Warnw("failed to retrieve pop3 message", "id", id, "error", err)
			continue
		}

		parsed, err := c.parser.Parse(buf.Bytes())
		if err != nil {
			c.logger.Warnw("failed to parse pop3 message", "id", id, "error", err)
			continue
		}
		messages = append(messages, parsed)
	}

	return messages, nil
}

func (c *POP3Client) Close() error {
	return c.conn.Quit()
}
