package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/studio"
)

// EventModel is the persistence model for the Event entity.
type EventModel struct {
	TenantModel
	ClientName           string          `gorm:"type:varchar(200);not null"`
	EventType            string          `gorm:"type:varchar(100)"`
	Venue                string          `gorm:"type:varchar(300)"`
	EventDate            time.Time       `gorm:"not null;index:idx_events_tenant_date,priority:2"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	AdvanceAmount        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	AdvancePaymentMethod string          `gorm:"type:varchar(50)"`
	PhotoEditingDone     bool            `gorm:"not null;default:false"`
	VideoEditingDone     bool            `gorm:"not null;default:false"`
	Notes                string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts the persistence model to a domain Event entity.
func (m *EventModel) ToDomain() *studio.Event {
	return &studio.Event{
		BaseEntity:           m.BaseModel.ToDomain(),
		TenantID:             m.TenantID,
		ClientName:           m.ClientName,
		EventType:            m.EventType,
		Venue:                m.Venue,
		EventDate:            m.EventDate,
		TotalAmount:          m.TotalAmount,
		AdvanceAmount:        m.AdvanceAmount,
		AdvancePaymentMethod: m.AdvancePaymentMethod,
		PhotoEditingDone:     m.PhotoEditingDone,
		VideoEditingDone:     m.VideoEditingDone,
		Notes:                m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Event entity.
func (m *EventModel) FromDomain(e *studio.Event) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.TenantID = e.TenantID
	m.ClientName = e.ClientName
	m.EventType = e.EventType
	m.Venue = e.Venue
	m.EventDate = e.EventDate
	m.TotalAmount = e.TotalAmount
	m.AdvanceAmount = e.AdvanceAmount
	m.AdvancePaymentMethod = e.AdvancePaymentMethod
	m.PhotoEditingDone = e.PhotoEditingDone
	m.VideoEditingDone = e.VideoEditingDone
	m.Notes = e.Notes
}

// EventModelFromDomain creates a new persistence model from a domain Event.
func EventModelFromDomain(e *studio.Event) *EventModel {
	m := &EventModel{}
	m.FromDomain(e)
	return m
}

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	TenantModel
	EventID     *uuid.UUID      `gorm:"type:uuid;index"`
	ClientName  string          `gorm:"type:varchar(200)"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method      string          `gorm:"type:varchar(50)"`
	PaymentDate time.Time       `gorm:"not null;index:idx_payments_tenant_date,priority:2"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *studio.Payment {
	return &studio.Payment{
		BaseEntity:  m.BaseModel.ToDomain(),
		TenantID:    m.TenantID,
		EventID:     m.EventID,
		ClientName:  m.ClientName,
		Amount:      m.Amount,
		Method:      m.Method,
		PaymentDate: m.PaymentDate,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *studio.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	m.EventID = p.EventID
	m.ClientName = p.ClientName
	m.Amount = p.Amount
	m.Method = p.Method
	m.PaymentDate = p.PaymentDate
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *studio.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// ExpenseModel is the persistence model for the Expense entity. Source and
// SourceID tie payroll mirror rows back to the payout they shadow.
type ExpenseModel struct {
	TenantModel
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method      string          `gorm:"type:varchar(50)"`
	ExpenseDate time.Time       `gorm:"not null;index:idx_expenses_tenant_date,priority:2"`
	Source      string          `gorm:"type:varchar(30);not null;default:'manual';index"`
	SourceID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *studio.Expense {
	return &studio.Expense{
		BaseEntity:  m.BaseModel.ToDomain(),
		TenantID:    m.TenantID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Method:      m.Method,
		ExpenseDate: m.ExpenseDate,
		Source:      m.Source,
		SourceID:    m.SourceID,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *studio.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.TenantID = e.TenantID
	m.Category = e.Category
	m.Description = e.Description
	m.Amount = e.Amount
	m.Method = e.Method
	m.ExpenseDate = e.ExpenseDate
	m.Source = e.Source
	m.SourceID = e.SourceID
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense.
func ExpenseModelFromDomain(e *studio.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// StaffPaymentModel is the persistence model for the StaffPayment entity.
type StaffPaymentModel struct {
	TenantModel
	StaffName   string          `gorm:"type:varchar(200);not null"`
	Role        string          `gorm:"type:varchar(100)"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method      string          `gorm:"type:varchar(50)"`
	PaymentDate time.Time       `gorm:"not null;index:idx_staff_payments_tenant_date,priority:2"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StaffPaymentModel) TableName() string {
	return "staff_payments"
}

// ToDomain converts the persistence model to a domain StaffPayment entity.
func (m *StaffPaymentModel) ToDomain() *studio.StaffPayment {
	return &studio.StaffPayment{
		BaseEntity:  m.BaseModel.ToDomain(),
		TenantID:    m.TenantID,
		StaffName:   m.StaffName,
		Role:        m.Role,
		Amount:      m.Amount,
		Method:      m.Method,
		PaymentDate: m.PaymentDate,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain StaffPayment entity.
func (m *StaffPaymentModel) FromDomain(p *studio.StaffPayment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	m.StaffName = p.StaffName
	m.Role = p.Role
	m.Amount = p.Amount
	m.Method = p.Method
	m.PaymentDate = p.PaymentDate
	m.Notes = p.Notes
}

// StaffPaymentModelFromDomain creates a new persistence model from a domain StaffPayment.
func StaffPaymentModelFromDomain(p *studio.StaffPayment) *StaffPaymentModel {
	m := &StaffPaymentModel{}
	m.FromDomain(p)
	return m
}

// FreelancerPaymentModel is the persistence model for the FreelancerPayment entity.
type FreelancerPaymentModel struct {
	TenantModel
	FreelancerName string          `gorm:"type:varchar(200);not null"`
	Assignment     string          `gorm:"type:varchar(300)"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method         string          `gorm:"type:varchar(50)"`
	PaymentDate    time.Time       `gorm:"not null;index:idx_freelancer_payments_tenant_date,priority:2"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FreelancerPaymentModel) TableName() string {
	return "freelancer_payments"
}

// ToDomain converts the persistence model to a domain FreelancerPayment entity.
func (m *FreelancerPaymentModel) ToDomain() *studio.FreelancerPayment {
	return &studio.FreelancerPayment{
		BaseEntity:     m.BaseModel.ToDomain(),
		TenantID:       m.TenantID,
		FreelancerName: m.FreelancerName,
		Assignment:     m.Assignment,
		Amount:         m.Amount,
		Method:         m.Method,
		PaymentDate:    m.PaymentDate,
		Notes:          m.Notes,
	}
}

// FromDomain populates the persistence model from a domain FreelancerPayment entity.
func (m *FreelancerPaymentModel) FromDomain(p *studio.FreelancerPayment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	m.FreelancerName = p.FreelancerName
	m.Assignment = p.Assignment
	m.Amount = p.Amount
	m.Method = p.Method
	m.PaymentDate = p.PaymentDate
	m.Notes = p.Notes
}

// FreelancerPaymentModelFromDomain creates a new persistence model from a domain FreelancerPayment.
func FreelancerPaymentModelFromDomain(p *studio.FreelancerPayment) *FreelancerPaymentModel {
	m := &FreelancerPaymentModel{}
	m.FromDomain(p)
	return m
}

// LedgerEntryModel is the persistence model for the LedgerEntry entity.
type LedgerEntryModel struct {
	TenantModel
	EntryType        string          `gorm:"type:varchar(10);not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method           string          `gorm:"type:varchar(50)"`
	Category         string          `gorm:"type:varchar(100)"`
	Description      string          `gorm:"type:text"`
	EntryDate        time.Time       `gorm:"not null;index:idx_ledger_entries_tenant_date,priority:2"`
	ReflectToCompany bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the persistence model to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToDomain() *studio.LedgerEntry {
	return &studio.LedgerEntry{
		BaseEntity:       m.BaseModel.ToDomain(),
		TenantID:         m.TenantID,
		EntryType:        m.EntryType,
		Amount:           m.Amount,
		Method:           m.Method,
		Category:         m.Category,
		Description:      m.Description,
		EntryDate:        m.EntryDate,
		ReflectToCompany: m.ReflectToCompany,
	}
}

// FromDomain populates the persistence model from a domain LedgerEntry entity.
func (m *LedgerEntryModel) FromDomain(l *studio.LedgerEntry) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.TenantID = l.TenantID
	m.EntryType = l.EntryType
	m.Amount = l.Amount
	m.Method = l.Method
	m.Category = l.Category
	m.Description = l.Description
	m.EntryDate = l.EntryDate
	m.ReflectToCompany = l.ReflectToCompany
}

// LedgerEntryModelFromDomain creates a new persistence model from a domain LedgerEntry.
func LedgerEntryModelFromDomain(l *studio.LedgerEntry) *LedgerEntryModel {
	m := &LedgerEntryModel{}
	m.FromDomain(l)
	return m
}

// ClosingBalanceModel is the persistence model for the ClosingBalance entity.
type ClosingBalanceModel struct {
	TenantModel
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ClosingDate time.Time       `gorm:"not null;index:idx_closing_balances_tenant_date,priority:2"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClosingBalanceModel) TableName() string {
	return "closing_balances"
}

// ToDomain converts the persistence model to a domain ClosingBalance entity.
func (m *ClosingBalanceModel) ToDomain() *studio.ClosingBalance {
	return &studio.ClosingBalance{
		BaseEntity:  m.BaseModel.ToDomain(),
		TenantID:    m.TenantID,
		Amount:      m.Amount,
		ClosingDate: m.ClosingDate,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain ClosingBalance entity.
func (m *ClosingBalanceModel) FromDomain(c *studio.ClosingBalance) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.TenantID = c.TenantID
	m.Amount = c.Amount
	m.ClosingDate = c.ClosingDate
	m.Notes = c.Notes
}

// ClosingBalanceModelFromDomain creates a new persistence model from a domain ClosingBalance.
func ClosingBalanceModelFromDomain(c *studio.ClosingBalance) *ClosingBalanceModel {
	m := &ClosingBalanceModel{}
	m.FromDomain(c)
	return m
}
