package sessions

import (
	"context"
	"ortoform-service/internal/app/contracts"
	"ortoform-service/internal/app/models"
	"ortoform-service/internal/pkg/constvars"
	"ortoform-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type sessionRedisNotifier struct {
	Client *redis.Client
	Log    *zap.Logger
}

// NewSessionRedisNotifier delivers session record snapshots over one pub/sub
// channel per session. Delivery is best-effort: the stream periodically
// re-reads the store, so a missed message only delays the next update.
func NewSessionRedisNotifier(client *redis.Client, logger *zap.Logger) contracts.SessionNotifier {
	return &sessionRedisNotifier{
		Client: client,
		Log:    logger,
	}
}

func (n *sessionRedisNotifier) Publish(ctx context.Context, session *models.FillSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel := constvars.RedisSessionChannelPrefix + session.SessionID
	if err := n.Client.Publish(ctx, channel, payload).Err(); err != nil {
		return exceptions.ErrRedisPublish(err)
	}
	return nil
}

func (n *sessionRedisNotifier) Subscribe(ctx context.Context, sessionID string) (<-chan *models.FillSession, func(), error) {
	channel := constvars.RedisSessionChannelPrefix + sessionID
	pubsub := n.Client.Subscribe(ctx, channel)

	// Force the SUBSCRIBE round trip so a broken connection surfaces here
	// instead of as a silently empty channel.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, exceptions.ErrRedisPublish(err)
	}

	out := make(chan *models.FillSession)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var session models.FillSession
			if err := json.Unmarshal([]byte(msg.Payload), &session); err != nil {
				n.Log.Warn("dropping undecodable session update",
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.Error(err),
				)
				continue
			}
			select {
			case out <- &session:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() {
		pubsub.Close()
	}
	return out, stop, nil
}
