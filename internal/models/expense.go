package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlog/backend/internal/types"
	"gorm.io/gorm"
)

// Expense represents a single spending record. Expenses are immutable
// once created, there are no update or delete operations.
type Expense struct {
	DefaultModel
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8);check:amount_positive,amount > 0"` // The amount spent
	Category string          // Free-form category label, e.g. "Food"
	Note     *string         // Optional note
	Date     types.Date      // Calendar date of the expense
	Month    types.Month     `gorm:"index"` // Month key, always derived from Date
}

// BeforeSave
//   - validates that the amount is positive
//   - trims whitespace from string fields
//   - derives the month key from the date
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	e.Category = strings.TrimSpace(e.Category)
	if e.Note != nil {
		note := strings.TrimSpace(*e.Note)
		e.Note = &note
	}

	if e.Date.IsZero() {
		e.Date = types.DateOf(time.Now().In(time.UTC))
	}

	// The month key is always recomputed so that it can never
	// diverge from the date
	e.Month = e.Date.Month()

	return nil
}
