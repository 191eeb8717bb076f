package mq

import (
	"context"
	"encoding/json"
	"log"

	"gedo/models"
	"gedo/rdx"
)

const channel = "site-events"

// Emit publishes a mutation event to Redis. Fire-and-forget: handlers call
// it in a goroutine and never depend on delivery. Publishing uses a fresh
// context, not the caller's: the request context is cancelled the moment the
// handler returns, which would drop events emitted from goroutines.
func Emit(_ context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[mq] failed to marshal %s event: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[mq] failed to publish %s event: %v", eventName, err)
	}
}

// StartWorker consumes mutation events and logs them; it is the hook point
// for search indexing or cache-warm jobs.
func StartWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[mq] failed to parse event: %v", err)
			continue
		}
		log.Printf("[mq] %s %s %s", event.Method, event.EntityType, event.EntityId)
	}
}
