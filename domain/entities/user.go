package entities

// User roles.
const (
	RoleCustomer     = "customer"
	RoleProfessional = "professional"
)

// User is an account in the marketplace. The id matches the identity
// provider's subject so auth claims map directly onto stored users.
type User struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Name      string `json:"name" dynamodbav:"name"`
	Role      string `json:"role" dynamodbav:"role"`
	Phone     string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
