package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentModeUPI   PaymentMode = "UPI"
	PaymentModeCash  PaymentMode = "Cash"
	PaymentModeCard  PaymentMode = "Card"
	PaymentModeOther PaymentMode = "Other"
)

type Receipt struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

type Expense struct {
	ID           string          `json:"_id"`
	UserID       string          `json:"userId"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory,omitempty"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	ReceiptImage *Receipt        `json:"receiptImage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type ExpenseFilter struct {
	From *time.Time
	To   *time.Time
}

type CategoryTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// MonthlySummary aggregates one calendar month of expenses.
type MonthlySummary struct {
	Year       int                      `json:"year"`
	Month      int                      `json:"month"`
	Total      decimal.Decimal          `json:"total"`
	Count      int                      `json:"count"`
	ByCategory map[string]CategoryTotal `json:"byCategory"`
}
