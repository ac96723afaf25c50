package refill

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_refill_sweeps_total",
		Help: "Auto-refill sweeps executed.",
	})
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_refill_orders_total",
		Help: "Orders placed by the auto-refill scheduler.",
	})
)
