package entity

import "time"

// RecordOrigin tags a combined-query result with the store it came from, so
// callers need not know whether a record has been archived yet.
type RecordOrigin string

const (
	OriginHot  RecordOrigin = "hot"
	OriginCold RecordOrigin = "cold"
)

// ArchivedNotification is the immutable cold-storage copy of a Notification.
type ArchivedNotification struct {
	Notification
	ArchivedAt time.Time `json:"archived_at"`
}

// ArchivedDeliveryAttempt is the immutable cold-storage copy of a
// DeliveryAttempt.
type ArchivedDeliveryAttempt struct {
	DeliveryAttempt
	ArchivedAt time.Time `json:"archived_at"`
}

// StoredNotification is a notification read through the combined hot+cold
// query, tagged with its origin.
type StoredNotification struct {
	Notification
	Origin RecordOrigin `json:"origin"`
}
