package globals

import (
	"context"
)

var (
	// JwtSecret is set once at startup from the resolved service account
	// (or the JWT_SECRET env override) before the server starts listening.
	JwtSecret []byte
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const UsernameKey ContextKey = "username"

var Ctx = context.Background()
