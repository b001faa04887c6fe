package studio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// ListFilter is the common query shape for all entity list endpoints.
// StartDate and EndDate bound the record's business date when set.
type ListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// toDomain converts the filter to the shared repository filter, applying
// pagination defaults.
func (f ListFilter) toDomain() shared.Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		From:     f.StartDate,
		To:       f.EndDate,
	}
}

// =============================================================================
// Event DTOs
// =============================================================================

// CreateEventRequest represents a request to book an event
type CreateEventRequest struct {
	ClientName           string          `json:"client_name" binding:"required,min=1,max=200"`
	EventType            string          `json:"event_type" binding:"max=100"`
	Venue                string          `json:"venue" binding:"max=200"`
	EventDate            time.Time       `json:"event_date" binding:"required"`
	TotalAmount          decimal.Decimal `json:"total_amount" binding:"required"`
	AdvanceAmount        decimal.Decimal `json:"advance_amount"`
	AdvancePaymentMethod string          `json:"advance_payment_method" binding:"max=50"`
	PhotoEditingDone     bool            `json:"photo_editing_done"`
	VideoEditingDone     bool            `json:"video_editing_done"`
	Notes                string          `json:"notes"`
}

// UpdateEventRequest represents a request to update a booked event
type UpdateEventRequest struct {
	ClientName           *string          `json:"client_name" binding:"omitempty,min=1,max=200"`
	EventType            *string          `json:"event_type" binding:"omitempty,max=100"`
	Venue                *string          `json:"venue" binding:"omitempty,max=200"`
	EventDate            *time.Time       `json:"event_date"`
	TotalAmount          *decimal.Decimal `json:"total_amount"`
	AdvanceAmount        *decimal.Decimal `json:"advance_amount"`
	AdvancePaymentMethod *string          `json:"advance_payment_method" binding:"omitempty,max=50"`
	PhotoEditingDone     *bool            `json:"photo_editing_done"`
	VideoEditingDone     *bool            `json:"video_editing_done"`
	Notes                *string          `json:"notes"`
}

// EventResponse represents a booked event in API responses
type EventResponse struct {
	ID                   uuid.UUID       `json:"id"`
	TenantID             uuid.UUID       `json:"tenant_id"`
	ClientName           string          `json:"client_name"`
	EventType            string          `json:"event_type"`
	Venue                string          `json:"venue"`
	EventDate            time.Time       `json:"event_date"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AdvanceAmount        decimal.Decimal `json:"advance_amount"`
	AdvancePaymentMethod string          `json:"advance_payment_method"`
	BalanceDue           decimal.Decimal `json:"balance_due"`
	PhotoEditingDone     bool            `json:"photo_editing_done"`
	VideoEditingDone     bool            `json:"video_editing_done"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToEventResponse converts a domain event to its API response
func ToEventResponse(e *studio.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		TenantID:             e.TenantID,
		ClientName:           e.ClientName,
		EventType:            e.EventType,
		Venue:                e.Venue,
		EventDate:            e.EventDate,
		TotalAmount:          e.TotalAmount,
		AdvanceAmount:        e.AdvanceAmount,
		AdvancePaymentMethod: e.AdvancePaymentMethod,
		BalanceDue:           e.BalanceDue(),
		PhotoEditingDone:     e.PhotoEditingDone,
		VideoEditingDone:     e.VideoEditingDone,
		Notes:                e.Notes,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

// =============================================================================
// Payment DTOs
// =============================================================================

// CreatePaymentRequest represents a request to record a client payment
type CreatePaymentRequest struct {
	EventID     *uuid.UUID      `json:"event_id"`
	ClientName  string          `json:"client_name" binding:"max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"max=50"`
	PaymentDate time.Time       `json:"payment_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdatePaymentRequest represents a request to update a client payment
type UpdatePaymentRequest struct {
	EventID     *uuid.UUID       `json:"event_id"`
	ClientName  *string          `json:"client_name" binding:"omitempty,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	Method      *string          `json:"method" binding:"omitempty,max=50"`
	PaymentDate *time.Time       `json:"payment_date"`
	Notes       *string          `json:"notes"`
}

// PaymentResponse represents a client payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	EventID     *uuid.UUID      `json:"event_id,omitempty"`
	ClientName  string          `json:"client_name"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain payment to its API response
func ToPaymentResponse(p *studio.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		EventID:     p.EventID,
		ClientName:  p.ClientName,
		Amount:      p.Amount,
		Method:      p.Method,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"max=50"`
	ExpenseDate time.Time       `json:"expense_date" binding:"required"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount"`
	Method      *string          `json:"method" binding:"omitempty,max=50"`
	ExpenseDate *time.Time       `json:"expense_date"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	ExpenseDate time.Time       `json:"expense_date"`
	Source      string          `json:"source"`
	SourceID    *uuid.UUID      `json:"source_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain expense to its API response
func ToExpenseResponse(e *studio.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		TenantID:    e.TenantID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Method:      e.Method,
		ExpenseDate: e.ExpenseDate,
		Source:      e.Source,
		SourceID:    e.SourceID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// =============================================================================
// Staff and freelancer payout DTOs
// =============================================================================

// CreateStaffPaymentRequest represents a request to record a staff payout
type CreateStaffPaymentRequest struct {
	StaffName   string          `json:"staff_name" binding:"required,min=1,max=200"`
	Role        string          `json:"role" binding:"max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"max=50"`
	PaymentDate time.Time       `json:"payment_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateStaffPaymentRequest represents a request to update a staff payout
type UpdateStaffPaymentRequest struct {
	StaffName   *string          `json:"staff_name" binding:"omitempty,min=1,max=200"`
	Role        *string          `json:"role" binding:"omitempty,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Method      *string          `json:"method" binding:"omitempty,max=50"`
	PaymentDate *time.Time       `json:"payment_date"`
	Notes       *string          `json:"notes"`
}

// StaffPaymentResponse represents a staff payout in API responses
type StaffPaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	StaffName   string          `json:"staff_name"`
	Role        string          `json:"role"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToStaffPaymentResponse converts a domain staff payout to its API response
func ToStaffPaymentResponse(p *studio.StaffPayment) StaffPaymentResponse {
	return StaffPaymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		StaffName:   p.StaffName,
		Role:        p.Role,
		Amount:      p.Amount,
		Method:      p.Method,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateFreelancerPaymentRequest represents a request to record a freelancer payout
type CreateFreelancerPaymentRequest struct {
	FreelancerName string          `json:"freelancer_name" binding:"required,min=1,max=200"`
	Assignment     string          `json:"assignment" binding:"max=200"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Method         string          `json:"method" binding:"max=50"`
	PaymentDate    time.Time       `json:"payment_date" binding:"required"`
	Notes          string          `json:"notes"`
}

// UpdateFreelancerPaymentRequest represents a request to update a freelancer payout
type UpdateFreelancerPaymentRequest struct {
	FreelancerName *string          `json:"freelancer_name" binding:"omitempty,min=1,max=200"`
	Assignment     *string          `json:"assignment" binding:"omitempty,max=200"`
	Amount         *decimal.Decimal `json:"amount"`
	Method         *string          `json:"method" binding:"omitempty,max=50"`
	PaymentDate    *time.Time       `json:"payment_date"`
	Notes          *string          `json:"notes"`
}

// FreelancerPaymentResponse represents a freelancer payout in API responses
type FreelancerPaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	FreelancerName string          `json:"freelancer_name"`
	Assignment     string          `json:"assignment"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	PaymentDate    time.Time       `json:"payment_date"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToFreelancerPaymentResponse converts a domain freelancer payout to its API response
func ToFreelancerPaymentResponse(p *studio.FreelancerPayment) FreelancerPaymentResponse {
	return FreelancerPaymentResponse{
		ID:             p.ID,
		TenantID:       p.TenantID,
		FreelancerName: p.FreelancerName,
		Assignment:     p.Assignment,
		Amount:         p.Amount,
		Method:         p.Method,
		PaymentDate:    p.PaymentDate,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// =============================================================================
// Ledger entry DTOs
// =============================================================================

// CreateLedgerEntryRequest represents a request to record a book entry
type CreateLedgerEntryRequest struct {
	EntryType        string          `json:"entry_type" binding:"required,oneof=Credit Debit"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Method           string          `json:"method" binding:"max=50"`
	Category         string          `json:"category" binding:"max=100"`
	Description      string          `json:"description" binding:"max=500"`
	EntryDate        time.Time       `json:"entry_date" binding:"required"`
	ReflectToCompany bool            `json:"reflect_to_company"`
}

// UpdateLedgerEntryRequest represents a request to update a book entry
type UpdateLedgerEntryRequest struct {
	EntryType        *string          `json:"entry_type" binding:"omitempty,oneof=Credit Debit"`
	Amount           *decimal.Decimal `json:"amount"`
	Method           *string          `json:"method" binding:"omitempty,max=50"`
	Category         *string          `json:"category" binding:"omitempty,max=100"`
	Description      *string          `json:"description" binding:"omitempty,max=500"`
	EntryDate        *time.Time       `json:"entry_date"`
	ReflectToCompany *bool            `json:"reflect_to_company"`
}

// LedgerEntryResponse represents a book entry in API responses
type LedgerEntryResponse struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	EntryType        string          `json:"entry_type"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	EntryDate        time.Time       `json:"entry_date"`
	ReflectToCompany bool            `json:"reflect_to_company"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToLedgerEntryResponse converts a domain ledger entry to its API response
func ToLedgerEntryResponse(l *studio.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:               l.ID,
		TenantID:         l.TenantID,
		EntryType:        l.EntryType,
		Amount:           l.Amount,
		Method:           l.Method,
		Category:         l.Category,
		Description:      l.Description,
		EntryDate:        l.EntryDate,
		ReflectToCompany: l.ReflectToCompany,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// =============================================================================
// Closing balance DTOs
// =============================================================================

// CreateClosingBalanceRequest represents a request to record a period close
type CreateClosingBalanceRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ClosingDate time.Time       `json:"closing_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateClosingBalanceRequest represents a request to update a period close
type UpdateClosingBalanceRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	ClosingDate *time.Time       `json:"closing_date"`
	Notes       *string          `json:"notes"`
}

// ClosingBalanceResponse represents a period close in API responses
type ClosingBalanceResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Amount      decimal.Decimal `json:"amount"`
	ClosingDate time.Time       `json:"closing_date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToClosingBalanceResponse converts a domain closing balance to its API response
func ToClosingBalanceResponse(c *studio.ClosingBalance) ClosingBalanceResponse {
	return ClosingBalanceResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Amount:      c.Amount,
		ClosingDate: c.ClosingDate,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
