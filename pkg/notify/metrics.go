package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcastsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_notify_broadcasts_sent_total",
		Help: "Change signals published to the broadcast channel.",
	})
	broadcastsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_notify_broadcasts_received_total",
		Help: "Change signals received from other contexts.",
	})
)
