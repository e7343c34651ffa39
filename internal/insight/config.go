package insight

import "time"

// Config holds reflection generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one Reflect call, retries included.
	Timeout time.Duration
}

// DefaultConfig returns the settings used by the TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}
