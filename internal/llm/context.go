package llm

import "context"

type contextKey int

const (
	purposeKey contextKey = iota
	correlationKey
)

// WithPurpose labels requests made with ctx, e.g. "reflection".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithCorrelationID ties requests to the caller's unit of work, such as an
// attempt ID, so log lines can be joined.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// CorrelationIDFrom returns the ID set by WithCorrelationID.
func CorrelationIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(correlationKey).(string)
	return v, ok && v != ""
}
