package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCommand(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		outcome    string
		durationMS float64
	}{
		{"successful fetch", "fetch", "ok", 0.5},
		{"access error", "attribute-get", "access-error", 0.2},
		{"execution error", "execute", "execution-error", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordCommand(tt.command, tt.outcome, tt.durationMS)
			count := testutil.ToFloat64(commandsTotal.WithLabelValues(tt.command, tt.outcome))
			assert.Greater(t, count, 0.0)
		})
	}
}

func TestSetTableSize(t *testing.T) {
	SetTableSize(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(tableSize))
}

func TestConnectionOpenedAndClosed(t *testing.T) {
	before := testutil.ToFloat64(connectionsActive)
	ConnectionOpened()
	assert.Equal(t, before+1, testutil.ToFloat64(connectionsActive))
	ConnectionClosed()
	assert.Equal(t, before, testutil.ToFloat64(connectionsActive))
}
