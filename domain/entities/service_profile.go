package entities

// ServiceProfile is a professional's public listing: who they are, what they
// do and what they charge.
type ServiceProfile struct {
	ID         string   `json:"id" dynamodbav:"id"`
	UserID     string   `json:"userId,omitempty" dynamodbav:"userId,omitempty"`
	Name       string   `json:"name" dynamodbav:"name"`
	Profession string   `json:"profession" dynamodbav:"profession"`
	Bio        string   `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	HourlyRate float64  `json:"hourlyRate" dynamodbav:"hourlyRate"`
	Rating     float64  `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Location   string   `json:"location,omitempty" dynamodbav:"location,omitempty"`
	Skills     []string `json:"skills,omitempty" dynamodbav:"skills,omitempty"`
	Available  bool     `json:"available" dynamodbav:"available"`
	CreatedAt  string   `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
