package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
)

const (
	MongoCollectionSessions = "sessions"

	// RedisSessionChannelPrefix namespaces the per-session pub/sub channel.
	RedisSessionChannelPrefix = "sessions:"
)

// SessionCompletedAtLayout is a fixed-width ISO-8601 layout so stored
// completedAt strings sort lexicographically in chronological order.
const SessionCompletedAtLayout = "2006-01-02T15:04:05.000Z"

const (
	ResponseUnknown = "unknown"
)
