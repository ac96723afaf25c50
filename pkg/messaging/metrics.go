package messaging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var messagesSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sg_messages_sent_total",
	Help: "Messages appended to the store via Send.",
})
