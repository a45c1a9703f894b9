package repository

import "context"

// UserSummary is a searchable projection of a user. It never carries
// credentials.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserDirectory is a full text index over users.
type UserDirectory interface {
	Search(ctx context.Context, query string, limit int) ([]UserSummary, error)
}
