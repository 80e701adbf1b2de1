package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal counts raw controller polls across all player slots.
	PollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "padview",
		Name:      "polls_total",
		Help:      "Number of controller polls performed.",
	})

	// ConnectedPads tracks how many player slots currently have a device.
	ConnectedPads = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "padview",
		Name:      "connected_pads",
		Help:      "Number of connected controllers.",
	})

	// BroadcastsTotal counts state messages fanned out to clients.
	BroadcastsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "padview",
		Name:      "broadcasts_total",
		Help:      "Number of state messages broadcast to clients.",
	})

	// TransitionsTotal counts button edges observed, labelled by kind.
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "padview",
		Name:      "button_transitions_total",
		Help:      "Number of button press/release edges observed.",
	}, []string{"kind"})
)
