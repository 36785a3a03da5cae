package domain

import "time"

// NotificationType tags a notification with the resource that triggered it.
type NotificationType string

const (
	NotifyAppointment NotificationType = "appointment"
	NotifyMessage     NotificationType = "message"
	NotifyDocument    NotificationType = "document"
	NotifyTask        NotificationType = "task"
	NotifyCase        NotificationType = "case"
)

// Notification is an in-app alert addressed to one user. Link is a dashboard
// route the UI navigates to on click.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	Link      string           `json:"link,omitempty"`
}
