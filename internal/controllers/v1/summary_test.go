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

func getTestSummary(t *testing.T, query string) v1.Summary {
	r := test.Request(t, http.MethodGet, "http://example.com/api/summary"+query, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var summary v1.Summary
	test.DecodeResponse(t, &r, &summary)

	return summary
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	summary := getTestSummary(suite.T(), "")

	assert.True(suite.T(), summary.Total.IsZero())
	assert.Equal(suite.T(), 0, summary.Count)
	assert.Empty(suite.T(), summary.Breakdown)
	assert.Empty(suite.T(), summary.Trends)
}

func (suite *TestSuiteStandard) TestSummary() {
	for _, editable := range []v1.ExpenseEditable{
		{Amount: decimal.NewFromFloat(42.50), Category: "Food", Date: types.NewDate(2024, 3, 15)},
		{Amount: decimal.NewFromFloat(7.50), Category: "Food", Date: types.NewDate(2024, 3, 20)},
		{Amount: decimal.NewFromFloat(800), Category: "Rent", Date: types.NewDate(2024, 4, 1)},
	} {
		createTestExpense(suite.T(), editable)
	}

	summary := getTestSummary(suite.T(), "")

	assert.True(suite.T(), decimal.NewFromFloat(850).Equal(summary.Total), "total is the sum of all amounts, got %s", summary.Total)
	assert.Equal(suite.T(), 3, summary.Count)

	require.Len(suite.T(), summary.Breakdown, 2)
	assert.True(suite.T(), decimal.NewFromFloat(50).Equal(summary.Breakdown["Food"]))
	assert.True(suite.T(), decimal.NewFromFloat(800).Equal(summary.Breakdown["Rent"]))

	require.Len(suite.T(), summary.Trends, 2)
	assert.True(suite.T(), decimal.NewFromFloat(50).Equal(summary.Trends["2024-03"]))
	assert.True(suite.T(), decimal.NewFromFloat(800).Equal(summary.Trends["2024-04"]))

	// Breakdown and trends both partition the matching set
	breakdownSum := decimal.Zero
	for _, amount := range summary.Breakdown {
		breakdownSum = breakdownSum.Add(amount)
	}
	assert.True(suite.T(), breakdownSum.Equal(summary.Total))

	trendsSum := decimal.Zero
	for _, amount := range summary.Trends {
		trendsSum = trendsSum.Add(amount)
	}
	assert.True(suite.T(), trendsSum.Equal(summary.Total))
}

func (suite *TestSuiteStandard) TestSummaryMonthFilter() {
	for _, editable := range []v1.ExpenseEditable{
		{Amount: decimal.NewFromFloat(42.50), Category: "Food", Date: types.NewDate(2024, 3, 15)},
		{Amount: decimal.NewFromFloat(800), Category: "Rent", Date: types.NewDate(2024, 4, 1)},
	} {
		createTestExpense(suite.T(), editable)
	}

	summary := getTestSummary(suite.T(), "?month=2024-03")

	assert.True(suite.T(), decimal.NewFromFloat(42.50).Equal(summary.Total))
	assert.Equal(suite.T(), 1, summary.Count)
	assert.Len(suite.T(), summary.Breakdown, 1)
	assert.Len(suite.T(), summary.Trends, 1)
}

func (suite *TestSuiteStandard) TestSummaryNoMatchingMonth() {
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(42.50),
		Category: "Food",
		Date:     types.NewDate(2024, 3, 15),
	})

	summary := getTestSummary(suite.T(), "?month=1999-01")

	assert.True(suite.T(), summary.Total.IsZero())
	assert.Equal(suite.T(), 0, summary.Count)
	assert.Empty(suite.T(), summary.Breakdown)
	assert.Empty(suite.T(), summary.Trends)
}

func (suite *TestSuiteStandard) TestSummaryWireFormat() {
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromFloat(42.50),
		Category: "Food",
		Date:     types.NewDate(2024, 3, 15),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Amounts render as JSON numbers, empty aggregates as objects
	var response map[string]any
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 42.50, response["total"])
	assert.Equal(suite.T(), float64(1), response["count"])
	assert.Equal(suite.T(), map[string]any{"Food": 42.50}, response["breakdown"])
	assert.Equal(suite.T(), map[string]any{"2024-03": 42.50}, response["trends"])
}

func (suite *TestSuiteStandard) TestSummaryUncategorized() {
	// The API rejects empty categories, but records written by other
	// means still need a breakdown bucket
	expense := models.Expense{
		Amount: decimal.NewFromFloat(12),
		Date:   types.NewDate(2024, 3, 15),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	summary := getTestSummary(suite.T(), "")

	require.Len(suite.T(), summary.Breakdown, 1)
	assert.True(suite.T(), decimal.NewFromFloat(12).Equal(summary.Breakdown["Other"]))
}

func (suite *TestSuiteStandard) TestSummaryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
