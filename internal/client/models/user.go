package models

// User is the authenticated account profile returned by the login endpoint
// and persisted alongside the auth token.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
