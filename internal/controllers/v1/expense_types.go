package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"
)

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	Amount   decimal.Decimal `json:"amount" binding:"required" example:"42.50"`    // The amount spent, must be greater than zero
	Category string          `json:"category" binding:"required" example:"Food"`   // Free-form category label
	Note     *string         `json:"note" example:"Lunch with the team"`           // Optional note
	Date     types.Date      `json:"date" binding:"required" example:"2024-03-15"` // Date of the expense in YYYY-MM-DD format
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:   editable.Amount,
		Category: editable.Category,
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

// validate checks the constraints that the binding tags cannot express.
func (editable ExpenseEditable) validate() error {
	if !editable.Amount.IsPositive() {
		return fieldErrAmountNotPositive
	}

	return nil
}

// Expense is the representation of an Expense in API v1.
type Expense struct {
	ID       string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the expense
	Amount   decimal.Decimal `json:"amount" example:"42.50"`                            // The amount spent
	Category string          `json:"category" example:"Food"`                           // Category label
	Note     *string         `json:"note" example:"Lunch with the team"`                // Note, null when not set
	Date     types.Date      `json:"date" example:"2024-03-15"`                         // Date in YYYY-MM-DD format
	Month    types.Month     `json:"month" example:"2024-03"`                           // Month key derived from the date
}

// newExpense returns the API v1 representation of the resource
func newExpense(model models.Expense) Expense {
	return Expense{
		ID:       model.ID.String(),
		Amount:   model.Amount,
		Category: model.Category,
		Note:     model.Note,
		Date:     model.Date,
		Month:    model.Month,
	}
}

// ExpenseCreateResponse is the response of a successful expense creation.
type ExpenseCreateResponse struct {
	ID string `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the created expense
}

// ExpenseQueryFilter contains the supported query parameters.
//
// The month filter is passed through as an exact match against the stored
// month key without validation, a value that is not a month key simply
// matches nothing.
type ExpenseQueryFilter struct {
	Month string `form:"month" example:"2024-03"` // Filter by month key
}
