package bootstrap

import (
	"context"
	"testing"

	"go-stationops/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func byLoggerName(logs *observer.ObservedLogs, name string) []observer.LoggedEntry {
	return logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == name
	}).All()
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	NewStdoutAuditLogger().Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := byLoggerName(logs, "audit")
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "Server is shutting down", fields["message"])
	assert.NotContains(t, fields, "request_id")
}

func TestStdoutAuditLogger_UsesRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := contextutil.WithRequestID(context.Background(), "rid-42")
	ctx = contextutil.WithLogger(ctx, base.Named("http"))

	NewStdoutAuditLogger(base).Log(ctx, AuditLog{Action: "LOGIN_FAILED", Message: "invalid credentials"})

	entries := byLoggerName(logs, "http.audit")
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "rid-42", fields["request_id"])
	assert.NotContains(t, fields, "meta")
}
