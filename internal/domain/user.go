package domain

// User represents a reviewer
type User struct {
	ID   int64
	Name string
}
