package domain

import "time"

// CaseStatus represents the lifecycle state of a legal case.
type CaseStatus string

const (
	CaseActive  CaseStatus = "active"
	CaseClosed  CaseStatus = "closed"
	CasePending CaseStatus = "pending"
)

// CasePriority is the urgency attached to a case.
type CasePriority string

const (
	PriorityLow    CasePriority = "low"
	PriorityMedium CasePriority = "medium"
	PriorityHigh   CasePriority = "high"
)

// Case is the matter a lawyer handles for a client. The embedded Documents
// and Tasks slices are denormalized snapshots carried for the dashboard view;
// the standalone documents and tasks collections remain the source of truth.
type Case struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	LawyerID    string       `json:"lawyerId"`
	ClientName  string       `json:"clientName"`
	LawyerName  string       `json:"lawyerName"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        string       `json:"type"`
	Status      CaseStatus   `json:"status"`
	Priority    CasePriority `json:"priority"`
	Progress    int          `json:"progress"` // 0-100
	Documents   []Document   `json:"documents"`
	Tasks       []Task       `json:"tasks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Participant reports whether the given user is the case's client or lawyer.
func (c *Case) Participant(userID string) bool {
	return c.ClientID == userID || c.LawyerID == userID
}

// Counterpart returns the id and display name of the other party on the case.
func (c *Case) Counterpart(userID string) (id, name string) {
	if c.ClientID == userID {
		return c.LawyerID, c.LawyerName
	}
	return c.ClientID, c.ClientName
}
