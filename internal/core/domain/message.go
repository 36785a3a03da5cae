package domain

import "time"

// ChatMessage is a single message in a case's conversation thread.
type ChatMessage struct {
	ID          string     `json:"id"`
	CaseID      string     `json:"caseId"`
	SenderID    string     `json:"senderId"`
	SenderName  string     `json:"senderName"`
	SenderRole  Role       `json:"senderRole"`
	Message     string     `json:"message"`
	Timestamp   time.Time  `json:"timestamp"`
	Attachments []Document `json:"attachments,omitempty"`
	IsRead      bool       `json:"isRead"`
}
