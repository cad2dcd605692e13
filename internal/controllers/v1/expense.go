package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenseList)
	r.GET("", GetExpenses)
	r.POST("", CreateExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create expense
// @Description	Creates a new expense. The month key is derived from the date.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	httpValidationError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := editable.validate(); err != nil {
		renderError(c, err)
		return
	}

	expense := editable.model()
	err = models.DB.Create(&expense).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{
		ID: expense.ID.String(),
	})
}

// @Summary		List expenses
// @Description	Returns all expenses, most recent date first, optionally filtered by month
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		Expense
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	string	false	"Filter by month key in YYYY-MM format"
// @Router			/api/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Most recent first. Expenses on the same date keep a stable order
	// through the id tie-break.
	q := models.DB.Order("date DESC, id")
	if filter.Month != "" {
		q = q.Where("month = ?", filter.Month)
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}
