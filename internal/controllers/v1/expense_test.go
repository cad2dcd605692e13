package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/spendlog/backend/internal/controllers/v1"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"
	"github.com/spendlog/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestExpense creates an expense via the API and returns the
// assigned ID.
func createTestExpense(t *testing.T, editable v1.ExpenseEditable, expectedStatus ...int) string {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/expenses", editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	if r.Code != http.StatusCreated {
		return ""
	}

	var created v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &created)
	require.NotEmpty(t, created.ID)

	return created.ID
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesCreateAndList() {
	id := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(42.50),
		Category: "Food",
		Date:     types.NewDate(2024, 3, 15),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []v1.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), id, expenses[0].ID)
	assert.True(suite.T(), decimal.NewFromFloat(42.50).Equal(expenses[0].Amount))
	assert.Equal(suite.T(), "Food", expenses[0].Category)
	assert.Nil(suite.T(), expenses[0].Note)
	assert.Equal(suite.T(), "2024-03-15", expenses[0].Date.String())
	assert.Equal(suite.T(), "2024-03", expenses[0].Month.String(), "month is derived from the date")
}

func (suite *TestSuiteStandard) TestExpensesCreateWireFormat() {
	body := `{ "amount": 42.50, "category": "Food", "note": "Lunch", "date": "2024-03-15" }`
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// The response contains exactly the id
	var created map[string]any
	test.DecodeResponse(suite.T(), &r, &created)
	assert.Len(suite.T(), created, 1)
	assert.Contains(suite.T(), created, "id")

	// Listing renders the amount as a JSON number and the date as text
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []map[string]any
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), 42.50, expenses[0]["amount"])
	assert.Equal(suite.T(), "Lunch", expenses[0]["note"])
	assert.Equal(suite.T(), "2024-03-15", expenses[0]["date"])
	assert.Equal(suite.T(), "2024-03", expenses[0]["month"])
}

func (suite *TestSuiteStandard) TestExpensesCreateRFC3339Date() {
	// Clients sending full timestamps get them truncated to the date
	body := `{ "amount": 10, "category": "Transport", "date": "2024-03-15T23:30:00+02:00" }`
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []v1.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), "2024-03-15", expenses[0].Date.String())
}

func (suite *TestSuiteStandard) TestExpensesCreateMalformedDate() {
	body := `{ "amount": 42.50, "category": "Food", "date": "15-03-2024" }`
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.ErrDateFormat.Error(), response.Error)

	// No record was written
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []v1.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Empty(suite.T(), expenses)
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidFields() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"Missing amount", `{ "category": "Food", "date": "2024-03-15" }`, "amount"},
		{"Zero amount", `{ "amount": 0, "category": "Food", "date": "2024-03-15" }`, "amount"},
		{"Negative amount", `{ "amount": -5, "category": "Food", "date": "2024-03-15" }`, "amount"},
		{"Missing category", `{ "amount": 42.50, "date": "2024-03-15" }`, "category"},
		{"Missing date", `{ "amount": 42.50, "category": "Food" }`, "date"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, response.Fields, tt.field)
		})
	}

	// None of the rejected requests wrote a record
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	var expenses []v1.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Empty(suite.T(), expenses)
}

func (suite *TestSuiteStandard) TestExpensesCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesCreateNoIdempotency() {
	editable := v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(42.50),
		Category: "Food",
		Date:     types.NewDate(2024, 3, 15),
	}

	first := createTestExpense(suite.T(), editable)
	second := createTestExpense(suite.T(), editable)
	assert.NotEqual(suite.T(), first, second, "re-submitting identical input creates a second record")
}

func (suite *TestSuiteStandard) TestExpensesListSortedByDateDescending() {
	for _, date := range []types.Date{
		types.NewDate(2024, 1, 1),
		types.NewDate(2024, 3, 1),
		types.NewDate(2024, 2, 1),
	} {
		createTestExpense(suite.T(), v1.ExpenseEditable{
			Amount:   decimal.NewFromFloat(1),
			Category: "Food",
			Date:     date,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []v1.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses, 3)
	assert.Equal(suite.T(), "2024-03-01", expenses[0].Date.String())
	assert.Equal(suite.T(), "2024-02-01", expenses[1].Date.String())
	assert.Equal(suite.T(), "2024-01-01", expenses[2].Date.String())
}

func (suite *TestSuiteStandard) TestExpensesListMonthFilter() {
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(10),
		Category: "Food",
		Date:     types.NewDate(2024, 3, 15),
	})
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(20),
		Category: "Rent",
		Date:     types.NewDate(2024, 4, 1),
	})

	tests := []struct {
		name  string
		month string
		count int
	}{
		{"Matching month", "2024-03", 1},
		{"Other matching month", "2024-04", 1},
		{"No matching records", "2020-01", 0},
		{"Not a month key at all", "pancakes", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/api/expenses?month="+tt.month, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses []v1.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.count)
		})
	}
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{
					Amount:   decimal.NewFromFloat(17.23),
					Category: "Food",
					Date:     types.NewDate(2024, 3, 15),
				}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/api/expenses", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response struct {
					Error string `json:"error"`
				}
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, models.ErrGeneral.Error(), response.Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
