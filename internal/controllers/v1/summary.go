package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
)

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// Summary aggregates the expenses matching a filter.
type Summary struct {
	Total     decimal.Decimal            `json:"total" example:"128.50"`                // Sum of all matching amounts
	Count     int                        `json:"count" example:"3"`                     // Number of matching expenses
	Breakdown map[string]decimal.Decimal `json:"breakdown" swaggertype:"object,number"` // Total amount per category
	Trends    map[string]decimal.Decimal `json:"trends" swaggertype:"object,number"`    // Total amount per month key
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/api/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Summarize expenses
// @Description	Returns the total, count, per-category breakdown and per-month trends of the matching expenses
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	Summary
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"Filter by month key in YYYY-MM format"
// @Router			/api/summary [get]
func GetSummary(c *gin.Context) {
	var filter ExpenseQueryFilter
	_ = c.Bind(&filter)

	q := models.DB
	if filter.Month != "" {
		q = q.Where("month = ?", filter.Month)
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		renderError(c, err)
		return
	}

	summary := Summary{
		Breakdown: make(map[string]decimal.Decimal),
		Trends:    make(map[string]decimal.Decimal),
	}

	for _, expense := range expenses {
		summary.Total = summary.Total.Add(expense.Amount)

		category := expense.Category
		if category == "" {
			category = "Other"
		}
		summary.Breakdown[category] = summary.Breakdown[category].Add(expense.Amount)

		if !expense.Month.IsZero() {
			month := expense.Month.String()
			summary.Trends[month] = summary.Trends[month].Add(expense.Amount)
		}
	}

	summary.Count = len(expenses)

	c.JSON(http.StatusOK, summary)
}
