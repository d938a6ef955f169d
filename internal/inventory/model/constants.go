package model

// Item statuses
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// AllowedStatuses defines which statuses can be set through the API
var AllowedStatuses = map[string]bool{
	StatusActive:   true,
	StatusArchived: true,
}

// Pagination bounds for list queries
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)
