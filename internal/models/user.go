package models

// User is the signed-in account. At most one user is authenticated at a
// time; the record is persisted as a single JSON file between runs.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
