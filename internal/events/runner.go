package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Handler reacts to one change envelope. Implementations must treat
// every invocation as independent and single-shot.
type Handler interface {
	HandleChange(ctx context.Context, change Change)
}

// Runner subscribes to the change channel and invokes the handler
// once per delivered envelope, each in its own goroutine so one slow
// or failing handler cannot delay the rest.
type Runner struct {
	rdb     *redis.Client
	handler Handler
}

// NewRunner creates a runner delivering changes to handler
func NewRunner(rdb *redis.Client, handler Handler) *Runner {
	return &Runner{rdb: rdb, handler: handler}
}

// Run blocks consuming the change channel until ctx is canceled
func (r *Runner) Run(ctx context.Context) {
	pubsub := r.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	log.Println("📡 Change-event subscriber started")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var change Change
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				log.Printf("Error unmarshaling change envelope: %v", err)
				continue
			}
			go r.handler.HandleChange(ctx, change)
		}
	}
}
