package entities

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusAccepted   RequestStatus = "accepted"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// validTransitions holds the allowed status transitions. Completed and
// cancelled are terminal.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether the status is a known lifecycle state.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a customer's job posting, optionally claimed by a
// professional. References to customer and professional ids are by
// convention only; nothing enforces them at this layer.
type ServiceRequest struct {
	ID             string        `json:"id" dynamodbav:"id"`
	CustomerID     string        `json:"customerId" dynamodbav:"customerId"`
	ProfessionalID string        `json:"professionalId,omitempty" dynamodbav:"professionalId,omitempty"`
	Category       string        `json:"category" dynamodbav:"category"`
	Description    string        `json:"description" dynamodbav:"description"`
	Status         RequestStatus `json:"status" dynamodbav:"status"`
	ScheduledDate  string        `json:"scheduledDate,omitempty" dynamodbav:"scheduledDate,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
