package rdx

import (
	"os"
	"time"

	"gedo/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Cached list reads are short-lived; mutation handlers invalidate eagerly.
const cacheTTL = 5 * time.Minute

// Init connects the shared Redis client. REDIS_URL defaults to a local
// instance; failures surface on first use, not here.
func Init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, cacheTTL).Err()
}

func RdxDel(keys ...string) error {
	return Conn.Del(globals.Ctx, keys...).Err()
}
