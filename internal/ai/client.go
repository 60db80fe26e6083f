package ai

import (
	"context"
	"errors"
)

const defaultMaxTokens = 8192

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Классы отказов LLM-провайдера. Вызывающая сторона не ретраит ни один из
// них: любой отказ переводит генерацию на детерминированный fallback.
var (
	ErrUnavailable   = errors.New("llm provider unavailable")
	ErrQuotaExceeded = errors.New("llm quota exceeded")
	ErrTimeout       = errors.New("llm request timed out")
)

type Client interface {
	Chat(ctx context.Context, messages []Message) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}

func classifyTransportError(err error) error {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	return ErrUnavailable
}

func classifyStatus(status int) error {
	if status == 429 {
		return ErrQuotaExceeded
	}
	if status >= 500 {
		return ErrUnavailable
	}

	return nil
}
