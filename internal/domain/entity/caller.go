package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Caller is the explicit identity of whoever invokes a service method.
// It is threaded through every call instead of living in ambient state, and
// carries the tenant memberships used for capability checks.
type Caller struct {
	UserID    uuid.UUID   `json:"user_id"`
	TenantIDs []uuid.UUID `json:"tenant_ids"`
	Roles     []string    `json:"roles"`
	System    bool        `json:"system"` // background jobs and internal producers
}

// SystemCaller is used by scheduled jobs that act on behalf of the platform.
func SystemCaller() Caller {
	return Caller{System: true}
}

// CanAccessTenant reports whether the caller may touch data owned by tenantID.
func (c Caller) CanAccessTenant(tenantID uuid.UUID) bool {
	if c.System {
		return true
	}

	return slices.Contains(c.TenantIDs, tenantID)
}

// HasRole reports whether the caller holds the named role.
func (c Caller) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}
