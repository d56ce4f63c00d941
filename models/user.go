package models

// User represents an authenticated storefront customer.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// PasswordHash is only populated for registered accounts; demo
	// logins carry an empty hash. Never serialized to clients.
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Session is the persisted authentication state of one client.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
