package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InteractionsTotal counts interaction writes by action and target.
	InteractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendora_interactions_total",
		Help: "Number of recorded interaction writes.",
	}, []string{"action", "target_type"})

	// TreeAssemblyDuration observes how long a comment tree reconstruction
	// takes end to end, including the three store fetches.
	TreeAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vendora_comment_tree_assembly_seconds",
		Help:    "Duration of comment tree assembly.",
		Buckets: prometheus.DefBuckets,
	})
)
