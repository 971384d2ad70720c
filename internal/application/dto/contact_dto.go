package dto

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a delivered submission
type ContactResponse struct {
	Sent bool `json:"sent"`
}
