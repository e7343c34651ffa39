// Package insight asks a language model for a short reflection on a
// finished attempt.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/llm"
	"github.com/abhisek/persona/internal/session"
)

// ErrDisabled is returned by a nil Service.
var ErrDisabled = errors.New("insight is not configured")

// Service generates reflections. A nil *Service is valid and always
// returns ErrDisabled.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a reflection service backed by provider.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger.Named("insight")}
}

// Enabled reports whether Reflect can succeed.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

type reflectionOutput struct {
	Headline   string   `json:"headline"`
	Reflection string   `json:"reflection"`
	GrowthTips []string `json:"growth_tips"`
}

// Reflect generates a reflection for o. It never changes o.
func (s *Service) Reflect(ctx context.Context, o session.Outcome) (*Reflection, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithCorrelationID(llm.WithPurpose(ctx, "reflection"), o.AttemptID)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(o)}},
		Schema:      ReflectionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("reflection failed", zap.String("code", o.Result.Code), zap.Error(err))
		return nil, fmt.Errorf("reflection: %w", err)
	}

	var out reflectionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reflection response: %w", err)
	}

	s.logger.Debug("reflection generated",
		zap.String("code", o.Result.Code),
		zap.String("attempt_id", o.AttemptID),
		zap.String("model", resp.Model),
	)

	return &Reflection{
		Code:       o.Result.Code,
		Headline:   out.Headline,
		Body:       out.Reflection,
		GrowthTips: out.GrowthTips,
		Model:      resp.Model,
	}, nil
}
