package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	webhookUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_updates_total",
			Help: "Webhook updates by processing outcome (deleted/ignored/failed/invalid).",
		},
		[]string{"outcome"},
	)

	deleteCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_delete_calls_total",
			Help: "Outbound deleteMessage calls by result.",
		},
		[]string{"success"},
	)

	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "A constant metric with labels for version and commit hash.",
		},
		[]string{"version", "commit"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(webhookUpdates, deleteCalls, buildInfo)
	})
}

func WebhookUpdate(outcome string) {
	webhookUpdates.WithLabelValues(outcome).Inc()
}

func DeleteCall(success bool) {
	deleteCalls.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func SetBuildInfo(version, commit string) {
	buildInfo.WithLabelValues(version, commit).Set(1)
}
