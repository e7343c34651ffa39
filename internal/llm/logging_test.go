package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingProvider_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	p := WithLogging(mock, ProviderMock, zap.New(core))

	ctx := WithCorrelationID(WithPurpose(context.Background(), "insight"), "attempt-1")
	_, err := p.Generate(ctx, Request{System: "sys"})
	require.NoError(t, err)

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "insight", fields["purpose"])
	assert.Equal(t, "mock", fields["provider"])
	assert.Equal(t, "attempt-1", fields["correlation_id"])
	assert.EqualValues(t, 12, fields["input_tokens"])
	assert.Equal(t, "llm", entries[0].LoggerName)

	assert.Equal(t, 1, logs.FilterMessage("llm exchange").Len())
}

func TestLoggingProvider_Failure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithLogging(mock, ProviderMock, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)

	entries := logs.FilterMessage("llm request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.NotContains(t, entries[0].ContextMap(), "correlation_id")
	assert.Equal(t, 0, logs.FilterMessage("llm exchange").Len())
}
