package contact

import "time"

// Message is a contact-form submission from the storefront.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
