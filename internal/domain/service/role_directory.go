package service

import (
	"context"

	"github.com/google/uuid"
)

// Contact is the addressing information the directory holds for one user.
type Contact struct {
	Email      string
	Phone      string
	PushTokens []string
}

// RoleDirectory is the external membership service: it expands role names
// into concrete tenant members and resolves user contact details. The engine
// never stores role membership itself.
type RoleDirectory interface {
	// UsersInRoles returns the ids of tenant members holding any of the
	// given roles. Unknown roles contribute nothing.
	UsersInRoles(ctx context.Context, tenantID uuid.UUID, roles []string) ([]uuid.UUID, error)

	// ContactFor resolves a user's addressing info for channel dispatch.
	ContactFor(ctx context.Context, tenantID, userID uuid.UUID) (*Contact, error)
}
