package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"smartgrocery/pkg/logger"
)

// ChannelName is the broadcast channel shared by all processes on the same
// store. The published payload carries no data beyond the sender identity.
const ChannelName = "sg-message-channel"

// RedisNotifier extends the local Broker with a Redis pub/sub channel so
// changes propagate to other processes sharing the same store. A publish
// from this instance is not re-delivered to its own subscribers: the local
// Broker already handled them, and the writer re-syncs through its own
// post-write path.
type RedisNotifier struct {
	*Broker
	cli      *redis.Client
	pubsub   *redis.PubSub
	instance string
	cancel   context.CancelFunc
}

// New returns a Notifier for the given Redis URL. When the URL is empty or
// Redis is unreachable it silently degrades to the in-process Broker; no
// error is surfaced to the caller.
func New(ctx context.Context, redisURL string) Notifier {
	if redisURL == "" {
		return NewBroker()
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("notify_redis_url_invalid", "error", err)
		return NewBroker()
	}
	cli := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cli.Ping(pingCtx).Err(); err != nil {
		logger.Warn("notify_redis_unreachable", "error", err)
		_ = cli.Close()
		return NewBroker()
	}

	n := &RedisNotifier{
		Broker:   NewBroker(),
		cli:      cli,
		instance: uuid.NewString(),
	}
	runCtx, stop := context.WithCancel(ctx)
	n.cancel = stop
	n.pubsub = cli.Subscribe(runCtx, ChannelName)
	go n.receive(runCtx)
	logger.Info("notify_redis_connected", "channel", ChannelName, "instance", n.instance)
	return n
}

func (n *RedisNotifier) receive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-n.pubsub.Channel():
			if !ok {
				return
			}
			// Drop the echo of our own publish; local subscribers were
			// already notified synchronously with the write.
			if msg.Payload == n.instance {
				continue
			}
			broadcastsReceived.Inc()
			n.Broker.NotifyChange()
		}
	}
}

func (n *RedisNotifier) NotifyChange() {
	n.Broker.NotifyChange()
	broadcastsSent.Inc()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := n.cli.Publish(ctx, ChannelName, n.instance).Err(); err != nil {
			logger.Warn("notify_publish_failed", "error", err)
		}
	}()
}

func (n *RedisNotifier) Close() error {
	n.cancel()
	_ = n.pubsub.Close()
	return n.cli.Close()
}
