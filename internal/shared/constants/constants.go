// Package constants defines shared constants used across the application.
package constants

// Database table names
const (
	TableUsers            = "users"
	TableTickets          = "tickets"
	TableTicketComments   = "ticket_comments"
	TableTicketStatusLogs = "ticket_status_logs"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
