package service

import "github.com/google/uuid"

// newID returns a collision-safe record id carrying the collection's type
// prefix, e.g. "apt_6f1c9a...". The original timestamp-based generator could
// collide under rapid creation.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// meetLink derives the video-call link for an appointment from its id.
func meetLink(appointmentID string) string {
	return "https://meet.legalconnect.app/" + appointmentID
}
