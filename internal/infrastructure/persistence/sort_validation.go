package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// EventSortFields contains allowed sort fields for bookings
var EventSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"client_name":  true,
	"event_type":   true,
	"event_date":   true,
	"total_amount": true,
}

// PaymentSortFields contains allowed sort fields for client payments
var PaymentSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"client_name":  true,
	"amount":       true,
	"method":       true,
	"payment_date": true,
}

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"category":     true,
	"amount":       true,
	"method":       true,
	"expense_date": true,
}

// StaffPaymentSortFields contains allowed sort fields for staff payouts
var StaffPaymentSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"staff_name":   true,
	"amount":       true,
	"payment_date": true,
}

// FreelancerPaymentSortFields contains allowed sort fields for freelancer payouts
var FreelancerPaymentSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"freelancer_name": true,
	"amount":          true,
	"payment_date":    true,
}

// LedgerEntrySortFields contains allowed sort fields for ledger entries
var LedgerEntrySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"entry_type": true,
	"amount":     true,
	"category":   true,
	"entry_date": true,
}

// ClosingBalanceSortFields contains allowed sort fields for closing balances
var ClosingBalanceSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"amount":       true,
	"closing_date": true,
}
