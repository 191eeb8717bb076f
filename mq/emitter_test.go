package mq

import (
	"bytes"
	"context"
	"log"
	"testing"

	"gedo/models"
	"gedo/rdx"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// Emit runs in goroutines that outlive the handler, so a cancelled request
// context must not abort the publish. With no broker reachable the publish
// still fails, but with a dial error rather than context.Canceled.
func TestEmitIgnoresCancelledCallerContext(t *testing.T) {
	prev := rdx.Conn
	rdx.Conn = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer func() { rdx.Conn = prev }()

	var buf bytes.Buffer
	prevOut := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prevOut)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Emit(ctx, "dish-created", models.Index{EntityType: "dish", EntityId: "d1", Method: "POST"})

	assert.NotContains(t, buf.String(), context.Canceled.Error())
}
