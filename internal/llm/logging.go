package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider records every request to a zap logger. Prompt and
// response bodies are logged at debug level only.
type LoggingProvider struct {
	inner    Provider
	provider string
	logger   *zap.Logger
}

// WithLogging wraps p so each Generate call emits one log entry.
func WithLogging(p Provider, provider string, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: provider, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
	}
	if id, ok := CorrelationIDFrom(ctx); ok {
		fields = append(fields, zap.String("correlation_id", id))
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}
	if resp != nil {
		fields = append(fields,
			zap.String("response_model", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("stop_reason", resp.StopReason),
		)
	}

	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
		return resp, err
	}

	l.logger.Info("llm request", fields...)
	if ce := l.logger.Check(zap.DebugLevel, "llm exchange"); ce != nil {
		ce.Write(
			zap.String("system", req.System),
			zap.Int("messages", len(req.Messages)),
			zap.ByteString("response", resp.Content),
		)
	}
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
