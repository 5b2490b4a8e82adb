package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the notification read/mutation service.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

// List retrieves a user's notifications for a tenant, newest first.
func (s *notificationService) List(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, filter repository.NotificationFilter, limit, offset int) ([]*entity.Notification, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListNotifications(ctx, userID, tenantID, filter, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount counts unread, undismissed notifications for the user.
func (s *notificationService) UnreadCount(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID) (int64, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.CountUnread(ctx, userID, tenantID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one notification read. Already-read rows are a no-op.
func (s *notificationService) MarkRead(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	return s.mutateOwned(ctx, caller, id, func(n *entity.Notification, now time.Time) bool {
		if n.Read {
			return false
		}
		n.MarkRead(now)

		return true
	})
}

// MarkReadBatch marks several notifications read. Rows the caller does not
// own abort the whole batch.
func (s *notificationService) MarkReadBatch(ctx context.Context, caller entity.Caller, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	notifications, err := s.notificationRepo.FindNotificationsByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load notifications")
	}

	now := time.Now().UTC()
	for _, n := range notifications {
		if err := checkNotificationAccess(caller, n); err != nil {
			return err
		}
		if n.Read {
			continue
		}

		n.MarkRead(now)
		if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
			return errors.Wrap(err, "failed to save notification")
		}
	}

	return nil
}

// Dismiss dismisses one notification. Already-dismissed rows are a no-op.
func (s *notificationService) Dismiss(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	return s.mutateOwned(ctx, caller, id, func(n *entity.Notification, now time.Time) bool {
		if n.Dismissed {
			return false
		}
		n.Dismiss(now)

		return true
	})
}

func (s *notificationService) mutateOwned(ctx context.Context, caller entity.Caller, id uuid.UUID, fn func(*entity.Notification, time.Time) bool) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound.WithDetails("notification " + id.String())
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if err := checkNotificationAccess(caller, notification); err != nil {
		return err
	}

	if !fn(notification, time.Now().UTC()) {
		return nil
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to save notification")
	}

	return nil
}

// checkNotificationAccess verifies tenant membership and ownership. A
// broadcast notification is owned by every tenant member.
func checkNotificationAccess(caller entity.Caller, n *entity.Notification) error {
	if !caller.CanAccessTenant(n.TenantID) {
		return domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + n.TenantID.String())
	}
	if !caller.System && !n.OwnedBy(caller.UserID) {
		return domainerrors.ErrPermission.WithDetails("notification belongs to another user")
	}

	return nil
}
