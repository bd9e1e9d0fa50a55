package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.BookingTransition(entity.BookingStatusPaid, entity.BookingStatusCompleted)
	m.BookingTransition(entity.BookingStatusPaid, entity.BookingStatusCompleted)
	m.WebhookEvent("payment_intent.succeeded", "processed")
	m.RewardGranted(50, true)
	m.MissionRun("daily", service.MissionRunStats{Assigned: 7, Skipped: 2, FailedBatches: 1}, time.Second)
	m.PushDelivered(3, 1)

	assert.InDelta(t, 2, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("paid", "completed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.webhookEvents.WithLabelValues("payment_intent.succeeded", "processed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.rewardsGranted.WithLabelValues("true")), 0)
	assert.InDelta(t, 50, testutil.ToFloat64(m.rewardXP), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.missionsAssigned.WithLabelValues("daily")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.missionSkipped.WithLabelValues("daily")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.missionFailures.WithLabelValues("daily")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.pushMessages.WithLabelValues("sent")), 0)
}

func TestMustNewMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := MustNewMetrics(reg)
	second := MustNewMetrics(reg)

	first.WebhookEvent("account.updated", "processed")
	assert.InDelta(t, 1, testutil.ToFloat64(second.webhookEvents.WithLabelValues("account.updated", "processed")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingTransition(entity.BookingStatusPending, entity.BookingStatusConfirmed)
		m.WebhookEvent("x", "y")
		m.RewardGranted(1, false)
		m.MissionRun("weekly", service.MissionRunStats{}, 0)
		m.PushDelivered(0, 0)
	})
}

func TestHandler_ServesRegistry(t *testing.T) {
	reg := NewRegistry()
	m := MustNewMetrics(reg)
	m.BookingTransition(entity.BookingStatusPending, entity.BookingStatusConfirmed)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `companion_booking_transitions_total{from="pending",to="confirmed"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
