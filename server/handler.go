package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"runtime/debug"
	"time"

	"github.com/jeeves-cluster-organization/remoteable/command"
	"github.com/jeeves-cluster-organization/remoteable/logging"
	"github.com/jeeves-cluster-organization/remoteable/observability"
	"github.com/jeeves-cluster-organization/remoteable/response"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// handleConnection serves one client connection until it closes, a frame
// fails to decode, or an unrecoverable write error occurs. Each connection
// runs on its own goroutine against the shared table, which is safe for
// concurrent use (table.Table's single RWMutex, spec.md §5).
func handleConnection(ctx context.Context, conn net.Conn, t *table.Table, log logging.Logger) {
	defer conn.Close()

	observability.ConnectionOpened()
	defer observability.ConnectionClosed()

	peer := conn.RemoteAddr().String()
	log.Info("connection_opened", "peer", peer)
	defer log.Info("connection_closed", "peer", peer)

	reader := bufio.NewReaderSize(conn, maxFrameBytes)
	writer := bufio.NewWriter(conn)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		raw, err := readFrame(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("connection_read_error", "peer", peer, "error", err.Error())
			}
			return
		}

		cmd, err := command.Decode(raw)
		if err != nil {
			log.Warn("connection_decode_error", "peer", peer, "error", err.Error())
			return
		}

		_, span := observability.StartCommandSpan(ctx, cmd.Serial())
		start := time.Now()
		resp := executeCommand(cmd, t, log)
		duration := time.Since(start)
		span.End()

		observability.RecordCommand(cmd.Serial(), outcomeOf(resp), float64(duration.Microseconds())/1000.0)
		observability.SetTableSize(t.Size())

		if err := writeFrame(writer, responseEncode(resp)); err != nil {
			log.Warn("connection_write_error", "peer", peer, "error", err.Error())
			return
		}
	}
}

// executeCommand runs cmd against t behind a recover. table.Call already
// guards the one known panicking reflect call, but attribute and item
// access also reach into arbitrary server-owned objects through reflect;
// this is the backstop so that no single command can take the whole
// server process down with it (spec.md §7, §4.6).
func executeCommand(cmd command.Command, t *table.Table, log logging.Logger) (resp response.Response) {
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			log.Error("panic_recovered", "command", cmd.Serial(), "panic", r, "stack", stack)
			resp = response.ExecutionErrorResponse{Text: "internal error executing command"}
		}
	}()
	return cmd.Execute(t)
}
