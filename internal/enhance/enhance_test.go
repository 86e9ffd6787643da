package enhance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"canvas-assistant-backend/internal/assistant"
)

func testInput() Input {
	return Input{
		UserMessage:  "how do I create an invoice?",
		Intent:       assistant.IntentInvoicingHelp,
		BaseResponse: "base reply",
	}
}

func TestSafe(t *testing.T) {
	guard := Guard{Timeout: 200 * time.Millisecond, MinLength: 10}
	tests := []struct {
		name     string
		enhancer Enhancer
		want     string
	}{
		{"nil enhancer", nil, "base reply"},
		{"identity", Identity{}, "base reply"},
		{"success trims", Func(func(context.Context, Input) (string, error) {
			return "  A friendlier reply.  ", nil
		}), "A friendlier reply."},
		{"error", Func(func(context.Context, Input) (string, error) {
			return "", errors.New("boom")
		}), "base reply"},
		{"empty completion", Func(func(context.Context, Input) (string, error) {
			return "", ErrEmptyCompletion
		}), "base reply"},
		{"too short", Func(func(context.Context, Input) (string, error) {
			return "ok!", nil
		}), "base reply"},
		{"exactly min length", Func(func(context.Context, Input) (string, error) {
			return "0123456789", nil
		}), "0123456789"},
		{"respects context timeout", Func(func(ctx context.Context, _ Input) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}), "base reply"},
		{"ignores context and hangs", Func(func(context.Context, Input) (string, error) {
			time.Sleep(2 * time.Second)
			return "too late to matter", nil
		}), "base reply"},
		{"panics", Func(func(context.Context, Input) (string, error) {
			panic("unexpected")
		}), "base reply"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			got := Safe(context.Background(), tt.enhancer, testInput(), guard)
			assert.Equal(t, tt.want, got)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestSafe_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := Func(func(ctx context.Context, _ Input) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	assert.Equal(t, "base reply", Safe(ctx, e, testInput(), DefaultGuard))
}

func TestSafe_ZeroGuardUsesDefaultTimeout(t *testing.T) {
	e := Func(func(ctx context.Context, _ Input) (string, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return "a perfectly fine reply", nil
	})
	assert.Equal(t, "a perfectly fine reply", Safe(context.Background(), e, testInput(), Guard{}))
}
