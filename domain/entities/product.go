package entities

// Product is a tool or piece of equipment sold in the FitIt store.
type Product struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name"`
	Description string  `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Category    string  `json:"category" dynamodbav:"category"`
	Price       float64 `json:"price" dynamodbav:"price"`
	Rating      float64 `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	InStock     bool    `json:"inStock" dynamodbav:"inStock"`
	CreatedAt   string  `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
