package models

// NotificationKind distinguishes the messages pushed to the webhook.
type NotificationKind string

const (
	NotificationReminder NotificationKind = "reminder"
	NotificationReport   NotificationKind = "report"
)

// Notification is an outbound message sent to the configured webhook.
type Notification struct {
	Kind NotificationKind `json:"kind"`
	Text string           `json:"text"`
}
