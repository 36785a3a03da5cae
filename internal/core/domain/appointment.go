package domain

import "time"

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a consultation booked by a client with a lawyer. Date and
// Time are kept as the original wire strings ("2026-09-01", "10:00") because
// bookings are calendar slots, not instants.
type Appointment struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"clientId"`
	LawyerID   string            `json:"lawyerId"`
	ClientName string            `json:"clientName"`
	LawyerName string            `json:"lawyerName"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Duration   int               `json:"duration"` // minutes
	Status     AppointmentStatus `json:"status"`
	MeetLink   string            `json:"meetLink,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	CaseType   string            `json:"caseType"`
	CreatedAt  time.Time         `json:"createdAt"`
}
