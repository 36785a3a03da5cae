package domain

import "time"

// Document is the metadata record for a file shared on a case. The bytes
// themselves live in the object store; URL is the store's reference.
type Document struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"caseId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"` // MIME type
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
	Folder     string    `json:"folder"`
}
