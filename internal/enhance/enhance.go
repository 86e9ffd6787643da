package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"canvas-assistant-backend/internal/assistant"
	"canvas-assistant-backend/internal/logx"
	"canvas-assistant-backend/internal/metrics"
)

var (
	ErrEmptyCompletion = errors.New("enhance: empty completion")
	ErrDegenerate      = errors.New("enhance: reply too short")
)

// Input is everything an enhancer may use to rephrase a base reply.
type Input struct {
	UserMessage  string
	Intent       assistant.Intent
	BaseResponse string
	Context      assistant.ConversationContext
}

// Enhancer rewrites a rule-derived reply in a more natural voice. Callers go
// through Safe, which turns every failure into the base reply.
type Enhancer interface {
	Enhance(ctx context.Context, in Input) (string, error)
}

// Func adapts a plain function to Enhancer.
type Func func(ctx context.Context, in Input) (string, error)

func (f Func) Enhance(ctx context.Context, in Input) (string, error) { return f(ctx, in) }

// Identity returns the base reply unchanged. It is the default when no model
// is configured.
type Identity struct{}

func (Identity) Enhance(_ context.Context, in Input) (string, error) { return in.BaseResponse, nil }

// Guard bounds an enhancement call.
type Guard struct {
	Timeout   time.Duration
	MinLength int
}

var DefaultGuard = Guard{Timeout: 8 * time.Second, MinLength: 10}

type result struct {
	text string
	err  error
}

// Safe runs e under g and always returns a usable reply: the enhanced text
// when the call succeeds in time with a non-degenerate result, otherwise
// in.BaseResponse.
func Safe(ctx context.Context, e Enhancer, in Input, g Guard) string {
	if e == nil {
		metrics.EnhancementsTotal.WithLabelValues(metrics.OutcomeDisabled).Inc()
		return in.BaseResponse
	}
	if _, ok := e.(Identity); ok {
		metrics.EnhancementsTotal.WithLabelValues(metrics.OutcomeDisabled).Inc()
		return in.BaseResponse
	}
	if g.Timeout <= 0 {
		g.Timeout = DefaultGuard.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	start := time.Now()
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("enhance: panic: %v", r)}
			}
		}()
		text, err := e.Enhance(ctx, in)
		done <- result{text: text, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}
	metrics.EnhancementDuration.Observe(time.Since(start).Seconds())

	text := strings.TrimSpace(res.text)
	if res.err == nil && utf8.RuneCountInString(text) < g.MinLength {
		res.err = ErrDegenerate
	}
	if res.err != nil {
		outcome := metrics.OutcomeError
		switch {
		case errors.Is(res.err, context.DeadlineExceeded):
			outcome = metrics.OutcomeTimeout
		case errors.Is(res.err, ErrDegenerate), errors.Is(res.err, ErrEmptyCompletion):
			outcome = metrics.OutcomeDegenerate
		}
		metrics.EnhancementsTotal.WithLabelValues(outcome).Inc()
		logx.Warn().Err(res.err).Str("intent", in.Intent.String()).Str("outcome", outcome).
			Msg("enhancement failed, using base response")
		return in.BaseResponse
	}
	metrics.EnhancementsTotal.WithLabelValues(metrics.OutcomeEnhanced).Inc()
	return text
}
