// Package server implements the connection-accepting half of the
// protocol: one goroutine per client connection, each serving commands
// against a shared object table (spec.md §5).
package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/jeeves-cluster-organization/remoteable/logging"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

// Listener accepts connections on a TCP address and serves each one
// against a shared table.Table.
type Listener struct {
	address  string
	table    *table.Table
	logger   logging.Logger
	listener net.Listener

	shutdownMu sync.Mutex
	isShutdown bool

	wg sync.WaitGroup
}

// New creates a Listener bound to address, exporting t as its object
// table. If log is nil, a no-op logger is used.
func New(address string, t *table.Table, log logging.Logger) *Listener {
	if log == nil {
		log = logging.NewNoopLogger()
	}
	return &Listener{address: address, table: t, logger: log}
}

// Serve starts accepting connections and blocks until ctx is cancelled or
// the underlying listener fails. On context cancellation it stops
// accepting new connections and waits for every open connection's handler
// to return; a handler checks for cancellation only between frames, so
// the wait lasts until each peer sends its next frame or disconnects.
func (l *Listener) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", l.address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	l.listener = lis

	l.logger.Info("listener_started", "address", l.address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- l.acceptLoop(ctx)
	}()

	select {
	case <-ctx.Done():
		l.logger.Info("listener_shutdown_initiated", "reason", ctx.Err().Error())
		l.Stop()
		l.wg.Wait()
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// ServeBackground listens on the address, runs the accept loop in a
// goroutine, and returns immediately along with a channel that receives
// the loop's terminal error. Unlike Serve it does not watch ctx by itself
// and does not wait for open connections: the loop ends when Stop closes
// the listener, sending nil if ctx is done by then and the accept error
// otherwise.
func (l *Listener) ServeBackground(ctx context.Context) (<-chan error, error) {
	lis, err := net.Listen("tcp", l.address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}
	l.listener = lis
	l.logger.Info("listener_started_background", "address", l.address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- l.acceptLoop(ctx)
	}()
	return errCh, nil
}

// Addr returns the address the listener is bound to. Only valid after
// Serve or ServeBackground has started listening.
func (l *Listener) Addr() net.Addr {
	if l.listener == nil {
		return nil
	}
	return l.listener.Addr()
}

// Stop closes the underlying listener, unblocking any in-progress Accept
// and preventing new connections. Already-open connections are left to
// finish on their own.
func (l *Listener) Stop() {
	l.shutdownMu.Lock()
	defer l.shutdownMu.Unlock()
	if l.isShutdown {
		return
	}
	l.isShutdown = true
	if l.listener != nil {
		l.listener.Close()
	}
}

func (l *Listener) acceptLoop(ctx context.Context) error {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			l.logger.Error("listener_accept_error", "error", err.Error())
			return err
		}

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			handleConnection(ctx, conn, l.table, l.logger)
		}()
	}
}
