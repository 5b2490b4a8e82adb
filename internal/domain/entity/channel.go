// Package entity contains the core business objects of the notification engine.
package entity

// Channel identifies a delivery channel for a notification.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"

	// ChannelAll is the wildcard accepted by preference updates; it is never
	// stored on a rule or delivery row.
	ChannelAll Channel = "all"
)

// AllChannels lists every concrete delivery channel.
var AllChannels = []Channel{ChannelInApp, ChannelEmail, ChannelSMS, ChannelPush}

// Valid reports whether c names a concrete delivery channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelSMS, ChannelPush:
		return true
	}

	return false
}

// ChannelSet is an unordered set of delivery channels.
type ChannelSet map[Channel]struct{}

// NewChannelSet builds a set from the given channels, dropping invalid names.
func NewChannelSet(channels ...Channel) ChannelSet {
	set := make(ChannelSet, len(channels))
	for _, c := range channels {
		if c.Valid() {
			set[c] = struct{}{}
		}
	}

	return set
}

// Contains reports whether the set includes c.
func (s ChannelSet) Contains(c Channel) bool {
	_, ok := s[c]

	return ok
}

// Add inserts c into the set.
func (s ChannelSet) Add(c Channel) {
	if c.Valid() {
		s[c] = struct{}{}
	}
}

// Remove deletes c from the set.
func (s ChannelSet) Remove(c Channel) {
	delete(s, c)
}

// Union returns a new set containing every channel in s or other.
func (s ChannelSet) Union(other ChannelSet) ChannelSet {
	merged := make(ChannelSet, len(s)+len(other))
	for c := range s {
		merged[c] = struct{}{}
	}
	for c := range other {
		merged[c] = struct{}{}
	}

	return merged
}

// Intersect returns a new set containing channels present in both sets.
func (s ChannelSet) Intersect(other ChannelSet) ChannelSet {
	out := make(ChannelSet)
	for c := range s {
		if other.Contains(c) {
			out[c] = struct{}{}
		}
	}

	return out
}

// Slice returns the channels in a stable order (AllChannels order).
func (s ChannelSet) Slice() []Channel {
	out := make([]Channel, 0, len(s))
	for _, c := range AllChannels {
		if s.Contains(c) {
			out = append(out, c)
		}
	}

	return out
}

// Priority ranks a notification for display and routing conditions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// Module identifies a functional area of the platform that scopes
// preferences and tenant rules.
type Module string

const (
	ModuleSales     Module = "sales"
	ModuleRecon     Module = "recon"
	ModuleTimeClock Module = "timeclock"
	ModuleInvoicing Module = "invoicing"
)

// KnownModules lists the modules the platform ships defaults for.
var KnownModules = []Module{ModuleSales, ModuleRecon, ModuleTimeClock, ModuleInvoicing}

// Valid reports whether m is a known module.
func (m Module) Valid() bool {
	switch m {
	case ModuleSales, ModuleRecon, ModuleTimeClock, ModuleInvoicing:
		return true
	}

	return false
}
