package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	writes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_store_collection_writes_total",
		Help: "Whole-collection writes to the messaging store.",
	})
	readFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_store_read_failures_total",
		Help: "Collection reads that found corrupt or unreadable data.",
	})
	seeds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sg_store_seeds_total",
		Help: "Times the default thread was installed into an empty store.",
	})
)
