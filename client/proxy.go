// Package client implements the transparent proxy half of the protocol:
// a Client holds the transport, and each Handle it mints stands in for a
// server-owned object, translating Go method calls into commands sent
// over that transport (spec.md §4.4).
package client

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jeeves-cluster-organization/remoteable/capsule"
	"github.com/jeeves-cluster-organization/remoteable/command"
	"github.com/jeeves-cluster-organization/remoteable/logging"
	"github.com/jeeves-cluster-organization/remoteable/response"
)

// Client is a connection to a remoting server plus the handle factory
// every Handle it mints calls back into.
type Client struct {
	conn   *conn
	logger logging.Logger
}

// Dial connects to a remoting server at address. If log is nil, a no-op
// logger is used.
func Dial(address string, log logging.Logger) (*Client, error) {
	if log == nil {
		log = logging.NewNoopLogger()
	}
	c, err := dial(address)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c, logger: log}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.close()
}

// Fetch looks up an exported name on the server and returns a handle
// bound to it.
func (c *Client) Fetch(name string) (*Handle, error) {
	resp, err := c.do(command.FetchCommand{Name: name})
	if err != nil {
		return nil, err
	}
	return c.asHandle(resp)
}

// Store wraps a Go value, sends it to the server to be stored, and
// returns a handle bound to the resulting table entry.
func (c *Client) Store(value any) (*Handle, error) {
	wrapped, err := capsule.Wrap(value)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(command.StoreCommand{Value: wrapped})
	if err != nil {
		return nil, err
	}
	return c.asHandle(resp)
}

// Handle mints a Handle bound to id without a round trip. It implements
// capsule.ClientAccessor so that a HandleResponse (e.g. the answer to an
// attribute read) or a HandleCapsule inside an evaluation response can
// materialize into a usable proxy value.
func (c *Client) Handle(id uuid.UUID) any {
	return &Handle{client: c, id: id}
}

func (c *Client) asHandle(resp response.Response) (*Handle, error) {
	value, err := resp.Interpret(c)
	if err != nil {
		return nil, err
	}
	handle, ok := value.(*Handle)
	if !ok {
		return nil, fmt.Errorf("expected a handle response, got %T", value)
	}
	return handle, nil
}

// do sends a command and decodes its response, without interpreting it.
func (c *Client) do(cmd command.Command) (response.Response, error) {
	raw := command.Encode(cmd)
	c.logger.Debug("command_sent", "serial", cmd.Serial())

	replyRaw, err := c.conn.request(raw)
	if err != nil {
		return nil, err
	}

	resp, err := response.Decode(replyRaw)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("response_received", "serial", resp.Serial())
	return resp, nil
}
