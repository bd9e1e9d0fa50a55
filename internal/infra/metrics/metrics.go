// Package metrics exports business counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "companion"

// Metrics implements service.MetricsRecorder. A nil *Metrics records nothing.
type Metrics struct {
	bookingTransitions *prometheus.CounterVec
	webhookEvents      *prometheus.CounterVec
	rewardsGranted     *prometheus.CounterVec
	rewardXP           prometheus.Counter
	missionsAssigned   *prometheus.CounterVec
	missionSkipped     *prometheus.CounterVec
	missionFailures    *prometheus.CounterVec
	missionDuration    *prometheus.HistogramVec
	pushMessages       *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler serves the registry in the text exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// MustNewMetrics registers the collectors on reg, reusing collectors that are
// already registered under the same name. Any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Metrics{
		bookingTransitions: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Booking status transitions that were committed.",
		}, []string{"from", "to"})),
		webhookEvents: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "webhook_events_total",
			Help:      "Stripe webhook events by type and handling outcome.",
		}, []string{"type", "outcome"})),
		rewardsGranted: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gamification",
			Name:      "booking_rewards_total",
			Help:      "Booking completion rewards granted.",
		}, []string{"level_up"})),
		rewardXP: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gamification",
			Name:      "reward_xp_total",
			Help:      "XP granted by booking completion rewards.",
		})),
		missionsAssigned: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "missions",
			Name:      "users_assigned_total",
			Help:      "Users that received a new mission set.",
		}, []string{"period"})),
		missionSkipped: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "missions",
			Name:      "users_skipped_total",
			Help:      "Users skipped because they were already reset in the current period.",
		}, []string{"period"})),
		missionFailures: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "missions",
			Name:      "failed_batches_total",
			Help:      "Assignment batches rolled back.",
		}, []string{"period"})),
		missionDuration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "missions",
			Name:      "run_duration_seconds",
			Help:      "Duration of a mission assignment run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"period", "status"})),
		pushMessages: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "push_messages_total",
			Help:      "FCM messages by delivery result.",
		}, []string{"result"})),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) C {
	if err := reg.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return collector
}

func (m *Metrics) BookingTransition(from, to entity.BookingStatus) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) WebhookEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) RewardGranted(xp int64, leveledUp bool) {
	if m == nil {
		return
	}
	m.rewardsGranted.WithLabelValues(strconv.FormatBool(leveledUp)).Inc()
	m.rewardXP.Add(float64(xp))
}

func (m *Metrics) MissionRun(period string, stats service.MissionRunStats, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if stats.FailedBatches > 0 {
		status = "partial"
	}
	m.missionsAssigned.WithLabelValues(period).Add(float64(stats.Assigned))
	m.missionSkipped.WithLabelValues(period).Add(float64(stats.Skipped))
	m.missionFailures.WithLabelValues(period).Add(float64(stats.FailedBatches))
	m.missionDuration.WithLabelValues(period, status).Observe(elapsed.Seconds())
}

func (m *Metrics) PushDelivered(sent, failed int) {
	if m == nil {
		return
	}
	m.pushMessages.WithLabelValues("sent").Add(float64(sent))
	m.pushMessages.WithLabelValues("failed").Add(float64(failed))
}
