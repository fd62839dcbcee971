package models

// Role tags for the three principal collections.
const (
	RoleCustomer = "customer"
	RoleAgency   = "agency"
	RoleDriver   = "driver"
)

// Principal is the authenticated identity summary carried by a session.
// It never includes a credential.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
