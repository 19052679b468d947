// Command remoting-server runs a standalone object-table server.
//
// Usage:
//
//	go run ./cmd/remoting-server                     # default :9090
//	go run ./cmd/remoting-server -addr :8080
//	go run ./cmd/remoting-server -metrics-addr :9100
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jeeves-cluster-organization/remoteable/logging"
	"github.com/jeeves-cluster-organization/remoteable/observability"
	"github.com/jeeves-cluster-organization/remoteable/server"
	"github.com/jeeves-cluster-organization/remoteable/table"
)

func main() {
	addr := flag.String("addr", ":9090", "remoting server address")
	metricsAddr := flag.String("metrics-addr", ":9100", "Prometheus metrics address")
	otlpEndpoint := flag.String("otlp-endpoint", "", "OTLP/gRPC trace collector address; tracing disabled if empty")
	flag.Parse()

	logger := logging.NewStdLogger()
	logger.Info("remoting_server_starting", "address", *addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		OTLPEndpoint: *otlpEndpoint,
		ServiceName:  "remoting-server",
	})
	if err != nil {
		logger.Error("tracing_init_failed", "error", err.Error())
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			logger.Error("metrics_server_error", "error", err.Error())
		}
	}()
	logger.Info("metrics_server_started", "address", *metricsAddr)

	t := table.New()
	listener := server.New(*addr, t, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh, err := listener.ServeBackground(ctx)
	if err != nil {
		logger.Error("listener_start_failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("remoting_server_ready", "address", *addr)
	fmt.Printf("\nRemoting server running on %s\n", *addr)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case sig := <-sigCh:
		logger.Info("shutdown_signal_received", "signal", sig.String())
		cancel()
		listener.Stop()
	case err := <-errCh:
		if err != nil {
			logger.Error("listener_error", "error", err.Error())
		}
	}

	logger.Info("remoting_server_stopped")
}
