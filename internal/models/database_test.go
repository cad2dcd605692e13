package models_test

import (
	"github.com/spendlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// Close the current connection first so that the failed connect
	// does not leak it
	suite.CloseDB()

	err := models.Connect("/dev/null/impossible")
	assert.NotNil(suite.T(), err)

	// Reconnect so that the teardown has something to close
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestDatabaseClosedGeneralError() {
	suite.CloseDB()

	var expenses []models.Expense
	err := models.DB.Find(&expenses).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
