package types

import "time"

// ContactRequest is a visitor contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewsletterRequest is a newsletter signup.
type NewsletterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// InquiryReceipt acknowledges an accepted submission.
type InquiryReceipt struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Inquiry is a stored submission. Submissions are held in a TTL-bounded
// in-memory store; there is no durable persistence.
type Inquiry struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}
