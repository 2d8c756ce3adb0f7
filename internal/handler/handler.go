package handler

import (
	"context"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
)

// Publisher pushes change envelopes onto the bus after a successful
// write. Satisfied by events.Bus.
type Publisher interface {
	Publish(ctx context.Context, change events.Change)
}
