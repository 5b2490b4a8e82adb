package impl

import (
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
)

// QuietHoursGate decides whether a user is inside a do-not-disturb window.
// It applies uniformly regardless of notification priority.
type QuietHoursGate struct {
	logger *slog.Logger
}

// NewQuietHoursGate creates a quiet-hours gate.
func NewQuietHoursGate(logger *slog.Logger) *QuietHoursGate {
	return &QuietHoursGate{logger: logger}
}

// IsSuppressed reports whether nowUTC falls inside the preference's
// quiet-hours window. The window is interpreted in the stored timezone; a
// start later than the end means the window spans midnight. Malformed
// windows never suppress.
func (g *QuietHoursGate) IsSuppressed(pref *entity.Preference, nowUTC time.Time) bool {
	qh := pref.QuietHours
	if !qh.Enabled {
		return false
	}

	loc, err := time.LoadLocation(qh.Timezone)
	if err != nil {
		g.logger.Warn("quiet hours with unknown timezone, not suppressing",
			slog.String("timezone", qh.Timezone),
			slog.String("user_id", pref.UserID.String()),
		)

		return false
	}

	start, okStart := parseClock(qh.Start)
	end, okEnd := parseClock(qh.End)
	if !okStart || !okEnd {
		g.logger.Warn("quiet hours with malformed window, not suppressing",
			slog.String("start", qh.Start),
			slog.String("end", qh.End),
			slog.String("user_id", pref.UserID.String()),
		)

		return false
	}

	local := nowUTC.In(loc)
	current := local.Hour()*60 + local.Minute()

	if start <= end {
		return current >= start && current <= end
	}

	// Window spans midnight, e.g. 22:00-08:00.
	return current >= start || current <= end
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
