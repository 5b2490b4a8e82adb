package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from    DeliveryStatus
		to      DeliveryStatus
		allowed bool
	}{
		{DeliveryQueued, DeliverySent, true},
		{DeliveryQueued, DeliveryFailed, true},
		{DeliveryQueued, DeliveryRejected, true},
		{DeliveryQueued, DeliveryDelivered, false},
		{DeliverySent, DeliveryDelivered, true},
		{DeliverySent, DeliveryBounced, true},
		{DeliverySent, DeliveryOpened, false},
		{DeliveryDelivered, DeliveryOpened, true},
		{DeliveryDelivered, DeliveryFailed, false},
		{DeliveryOpened, DeliveryClicked, true},
		{DeliveryClicked, DeliveryOpened, false},
		{DeliveryFailed, DeliverySent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestDeliveryStatus_Terminal(t *testing.T) {
	assert.True(t, DeliveryClicked.Terminal())
	assert.True(t, DeliveryFailed.Terminal())
	assert.True(t, DeliveryBounced.Terminal())
	assert.True(t, DeliveryRejected.Terminal())
	assert.False(t, DeliveryQueued.Terminal())
	assert.False(t, DeliveryDelivered.Terminal())
}

func TestDeliveryAttempt_TransitionStampsMilestonesAndLatency(t *testing.T) {
	queued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	attempt := NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), ChannelEmail, queued)

	sent := queued.Add(200 * time.Millisecond)
	require.True(t, attempt.Transition(DeliverySent, sent))
	assert.Equal(t, DeliverySent, attempt.Status)
	require.NotNil(t, attempt.SentAt)
	assert.Equal(t, int64(200), attempt.LatencyMS)

	delivered := sent.Add(3 * time.Second)
	require.True(t, attempt.Transition(DeliveryDelivered, delivered))
	assert.Equal(t, int64(3000), attempt.LatencyMS)

	opened := delivered.Add(time.Minute)
	require.True(t, attempt.Transition(DeliveryOpened, opened))
	assert.Equal(t, time.Minute.Milliseconds(), attempt.LatencyMS)
}

func TestDeliveryAttempt_ForbiddenTransitionLeavesAttemptUntouched(t *testing.T) {
	queued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	attempt := NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), ChannelPush, queued)

	require.False(t, attempt.Transition(DeliveryOpened, queued.Add(time.Second)))
	assert.Equal(t, DeliveryQueued, attempt.Status)
	assert.Nil(t, attempt.OpenedAt)
	assert.Zero(t, attempt.LatencyMS)
}

func TestDeliveryAttempt_FailRecordsErrorDetail(t *testing.T) {
	queued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	attempt := NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), ChannelSMS, queued)

	require.True(t, attempt.Fail("PROVIDER_ERROR", "gateway timeout", queued.Add(time.Second)))
	assert.Equal(t, DeliveryFailed, attempt.Status)
	assert.Equal(t, "PROVIDER_ERROR", attempt.ErrorCode)
	assert.Equal(t, "gateway timeout", attempt.ErrorMessage)
	require.NotNil(t, attempt.FailedAt)
}

func TestDeliveryAttempt_RequeuePreservesLastError(t *testing.T) {
	queued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	attempt := NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), ChannelEmail, queued)
	require.True(t, attempt.Fail("550", "mailbox unavailable", queued.Add(time.Second)))

	retryAt := queued.Add(10 * time.Minute)
	attempt.Requeue(retryAt)

	assert.Equal(t, DeliveryQueued, attempt.Status)
	assert.Equal(t, retryAt, attempt.QueuedAt)
	assert.Nil(t, attempt.FailedAt)
	assert.Equal(t, 1, attempt.RetryCount)
	assert.Equal(t, "550", attempt.ErrorCode)
}
