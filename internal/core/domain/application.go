package domain

import "time"

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusScreening ApplicationStatus = "Screening"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
)

// validTransitions defines the allowed state machine transitions.
// Rejected is terminal: it has no outgoing edges.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:   {StatusScreening, StatusRejected},
	StatusScreening: {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {StatusRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusHistoryEntry records a single status change on an application.
// Entries are append-only: they are never edited or removed.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status" bson:"status"`
	ChangedBy string            `json:"changed_by" bson:"changed_by"`
	ChangedAt time.Time         `json:"changed_at" bson:"changed_at"`
	Note      string            `json:"note,omitempty" bson:"note,omitempty"`
}

// Application links one candidate to one job. EmployerID duplicates the
// owning job's employer at creation time so authorization checks never
// need a second lookup; it is never updated afterwards.
type Application struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	JobID         string               `json:"job_id" bson:"job_id"`
	CandidateID   string               `json:"candidate_id" bson:"candidate_id"`
	EmployerID    string               `json:"employer_id" bson:"employer_id"`
	CoverLetter   string               `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	ResumeURL     string               `json:"resume_url" bson:"resume_url"`
	Status        ApplicationStatus    `json:"status" bson:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	IsWithdrawn   bool                 `json:"is_withdrawn" bson:"is_withdrawn"`
	WithdrawnAt   *time.Time           `json:"withdrawn_at,omitempty" bson:"withdrawn_at,omitempty"`
	AppliedAt     time.Time            `json:"applied_at" bson:"applied_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}
