package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is the gateway's only failure channel. Callers cannot
// distinguish a rate limit from a network fault from a bad response; all of
// it means "feature unavailable now, try again".
var ErrUnavailable = errors.New("ai service unavailable")

// Image is one uploaded picture attached alongside a prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Gateway wraps a single outbound call to a hosted generative model.
// Implementations may retry internally but never surface the cause of a
// failure.
type Gateway interface {
	Generate(ctx context.Context, prompt string, images []Image) (string, error)
}
