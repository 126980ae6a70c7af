package entities

// ChatMessage is a single message in a support or negotiation session.
// TTL is a Unix epoch used by DynamoDB's time-to-live expiry.
type ChatMessage struct {
	ID        string `json:"id" dynamodbav:"id"`
	SessionID string `json:"sessionId" dynamodbav:"sessionId"`
	UserID    string `json:"userId,omitempty" dynamodbav:"userId,omitempty"`
	Role      string `json:"role,omitempty" dynamodbav:"role,omitempty"`
	Content   string `json:"content" dynamodbav:"content"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp"`
	TTL       int64  `json:"ttl,omitempty" dynamodbav:"ttl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
