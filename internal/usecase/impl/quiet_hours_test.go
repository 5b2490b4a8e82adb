package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuietHoursGate() *QuietHoursGate {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewQuietHoursGate(logger)
}

func prefWithQuietHours(qh entity.QuietHours) *entity.Preference {
	pref := entity.DefaultPreference(uuid.New(), uuid.New(), entity.ModuleSales, time.Now().UTC())
	pref.QuietHours = qh

	return pref
}

func mustUTC(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return ts.UTC()
}

func TestQuietHoursGate_DisabledWindowNeverSuppresses(t *testing.T) {
	gate := newTestQuietHoursGate()
	pref := prefWithQuietHours(entity.QuietHours{
		Enabled:  false,
		Start:    "22:00",
		End:      "08:00",
		Timezone: "UTC",
	})

	assert.False(t, gate.IsSuppressed(pref, mustUTC(t, "2026-03-10T23:30:00Z")))
}

func TestQuietHoursGate_MidnightSpanningWindow(t *testing.T) {
	gate := newTestQuietHoursGate()
	pref := prefWithQuietHours(entity.QuietHours{
		Enabled:  true,
		Start:    "22:00",
		End:      "08:00",
		Timezone: "UTC",
	})

	tests := []struct {
		name       string
		now        string
		suppressed bool
	}{
		{"late evening inside window", "2026-03-10T23:30:00Z", true},
		{"early morning inside window", "2026-03-10T07:30:00Z", true},
		{"window start boundary", "2026-03-10T22:00:00Z", true},
		{"mid morning outside window", "2026-03-10T09:00:00Z", false},
		{"just before window opens", "2026-03-10T21:59:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.suppressed, gate.IsSuppressed(pref, mustUTC(t, tt.now)))
		})
	}
}

func TestQuietHoursGate_SameDayWindow(t *testing.T) {
	gate := newTestQuietHoursGate()
	pref := prefWithQuietHours(entity.QuietHours{
		Enabled:  true,
		Start:    "12:00",
		End:      "14:00",
		Timezone: "UTC",
	})

	assert.True(t, gate.IsSuppressed(pref, mustUTC(t, "2026-03-10T13:00:00Z")))
	assert.False(t, gate.IsSuppressed(pref, mustUTC(t, "2026-03-10T15:00:00Z")))
}

func TestQuietHoursGate_WindowUsesStoredTimezone(t *testing.T) {
	gate := newTestQuietHoursGate()
	pref := prefWithQuietHours(entity.QuietHours{
		Enabled:  true,
		Start:    "22:00",
		End:      "08:00",
		Timezone: "America/Chicago",
	})

	// 04:30 UTC in winter is 22:30 in Chicago, inside the window.
	assert.True(t, gate.IsSuppressed(pref, mustUTC(t, "2026-01-15T04:30:00Z")))
	// 20:00 UTC is 14:00 in Chicago, outside the window.
	assert.False(t, gate.IsSuppressed(pref, mustUTC(t, "2026-01-15T20:00:00Z")))
}

func TestQuietHoursGate_MalformedWindowFailsOpen(t *testing.T) {
	gate := newTestQuietHoursGate()

	tests := []struct {
		name string
		qh   entity.QuietHours
	}{
		{"bad start", entity.QuietHours{Enabled: true, Start: "25:99", End: "08:00", Timezone: "UTC"}},
		{"bad end", entity.QuietHours{Enabled: true, Start: "22:00", End: "late", Timezone: "UTC"}},
		{"unknown timezone", entity.QuietHours{Enabled: true, Start: "22:00", End: "08:00", Timezone: "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := prefWithQuietHours(tt.qh)
			assert.False(t, gate.IsSuppressed(pref, mustUTC(t, "2026-03-10T23:30:00Z")))
		})
	}
}
