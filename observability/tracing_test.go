package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTracingNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestStartCommandSpanReturnsContextAndSpan(t *testing.T) {
	_, err := InitTracing(context.Background(), TracingConfig{ServiceName: "test"})
	require.NoError(t, err)

	ctx, span := StartCommandSpan(context.Background(), "fetch")
	defer span.End()
	require.NotNil(t, ctx)
	require.NotNil(t, span)
}
