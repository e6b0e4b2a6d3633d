package model

// Scope carries the caller identity through usecase boundaries.
type Scope struct {
	UserID   string
	Username string
}
