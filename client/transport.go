package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
)

// maxFrameBytes mirrors the server's frame size bound (spec.md §6).
const maxFrameBytes = 65536

// conn is the newline-delimited JSON transport a Client drives. It mirrors
// original_source/client.py's RemotingClient.send/receive, translated
// from a raw socket.send/recv pair into a buffered, framed reader/writer
// so a response can never be split across two recv calls.
type conn struct {
	nc     net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
}

func dial(address string) (*conn, error) {
	nc, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return &conn{
		nc:     nc,
		reader: bufio.NewReaderSize(nc, maxFrameBytes),
		writer: bufio.NewWriter(nc),
	}, nil
}

func (c *conn) request(raw map[string]any) (map[string]any, error) {
	if err := c.send(raw); err != nil {
		return nil, err
	}
	return c.receive()
}

func (c *conn) send(raw map[string]any) error {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	if len(encoded) > maxFrameBytes {
		return fmt.Errorf("request exceeds %d bytes", maxFrameBytes)
	}
	if _, err := c.writer.Write(encoded); err != nil {
		return err
	}
	if err := c.writer.WriteByte('\n'); err != nil {
		return err
	}
	return c.writer.Flush()
}

func (c *conn) receive() (map[string]any, error) {
	line, err := c.reader.ReadSlice('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return raw, nil
}

func (c *conn) close() error {
	return c.nc.Close()
}
