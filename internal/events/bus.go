package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "yrdly:changes"

// Action is what happened to a record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Collection names the kind of record a change refers to.
type Collection string

const (
	CollectionFriendRequests Collection = "friend_requests"
	CollectionMessages       Collection = "messages"
	CollectionPosts          Collection = "posts"
	CollectionComments       Collection = "comments"
	CollectionEvents         Collection = "events"
	CollectionMailQueue      Collection = "mail_queue"
)

// Change is the envelope published for every monitored write. Before
// and After carry full record snapshots; update handlers re-derive
// what changed from the pair instead of trusting delivery order,
// because Redis Pub/Sub gives no cross-record ordering guarantee.
type Change struct {
	ID         uuid.UUID       `json:"id"`
	Collection Collection      `json:"collection"`
	Action     Action          `json:"action"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after"`
}

// Created builds a create envelope from a record.
func Created(id uuid.UUID, collection Collection, after any) Change {
	return Change{ID: id, Collection: collection, Action: ActionCreated, After: marshal(after)}
}

// Updated builds an update envelope from before/after snapshots.
func Updated(id uuid.UUID, collection Collection, before, after any) Change {
	return Change{ID: id, Collection: collection, Action: ActionUpdated, Before: marshal(before), After: marshal(after)}
}

func marshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling change payload: %v", err)
		return nil
	}
	return data
}

// Bus publishes change envelopes over Redis Pub/Sub so any instance's
// runner can react. Publishing is best-effort: a publish failure is
// logged and swallowed, the triggering write has already succeeded.
type Bus struct {
	rdb *redis.Client
}

// NewBus creates a change bus on the given Redis client
func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

// Publish sends a change envelope to every subscribed runner
func (b *Bus) Publish(ctx context.Context, change Change) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Printf("Error marshaling change for Redis: %v", err)
		return
	}

	if err := b.rdb.Publish(ctx, redisChannel, data).Err(); err != nil {
		log.Printf("Error publishing change to Redis: %v", err)
	}
}
