package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"workdesk/internal/domain/mailroom"
	"workdesk/internal/shared/logger"
)

// IMAPClient drains unseen messages from a selected folder and flags what it
// hands out as seen.
type IMAPClient struct {
	client *imapclient.Client
	parser *Parser
	folder string
	logger logger.Interface
}

func dialIMAP(ctx context.Context, account *mailroom.Account, dialTimeout time.Duration, log logger.Interface) (*IMAPClient, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", account.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", account.Address(), err)
	}

	if account.UseTLS() {
		conn = tls.Client(conn, &tls.Config{ServerName: account.Host()})
	}

	client := imapclient.New(conn, nil)

	if err := client.Login(account.Username(), account.Password()).Wait(); err != nil {
		client.Close()
		return nil, fmt.Errorf("imap login failed: %w", err)
	}

	if _, err := client.Select(account.Folder(), nil).Wait(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to select folder %s: %w", account.Folder(), err)
	}

	return &IMAPClient{
		client: client,
		parser: NewParser(),
		folder: account.Folder(),
		logger: log,
	}, nil
}

func (c *IMAPClient) Fetch(ctx context.Context, limit int) ([]mailroom.ParsedMessage, error) {
	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
	}
	searchData, err := c.client.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap search failed: %w", err)
	}

	seqNums := searchData.AllSeqNums()
	if len(seqNums) == 0 {
		return nil, nil
	}
	seqNums = newestSeqNums(seqNums, limit)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seqSet := imap.SeqSetNum(seqNums...)
	fetchOptions := &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{{}},
	}
	buffers, err := c.client.Fetch(seqSet, fetchOptions).Collect()
	if err != nil {
		return nil, fmt.Errorf("imap fetch failed: %w", err)
	}

	messages := make([]mailroom.ParsedMessage, 0, len(buffers))
	for _, buffer := range buffers {
		raw := buffer.FindBodySection(&imap.FetchItemBodySection{})
		if len(raw) == 0 {
			c.logger.Warnw("imap message has no body section", "seq", buffer.SeqNum)
			continue
		}

		parsed, err := c.parser.Parse(raw)
		if err != nil {
			c.logger.Warnw("failed to parse imap message", "seq", buffer.SeqNum, "error", err)
			continue
		}
		messages = append(messages, parsed)
	}

	// Flag everything we touched so the next run starts clean.
	storeFlags := &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}
	if err := c.client.Store(seqSet, storeFlags, nil).Close(); err != nil {
		c.logger.Warnw("failed to mark imap messages seen", "folder", c.folder, "error", err)
	}

	return messages, nil
}

func (c *IMAPClient) Close() error {
	if err := c.client.Logout().Wait(); err != nil {
		return c.client.Close()
	}
	return nil
}
