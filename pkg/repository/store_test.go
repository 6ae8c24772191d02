package repository_test

import (
	"context"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BrewNotes/pkg/model"
	"droscher.com/BrewNotes/pkg/repository"
)

// StoreSuite backs the behavior tests with a real in-memory database.
type StoreSuite struct {
	suite.Suite
	repository repository.Repository
}

func (suite *StoreSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T())

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLogger})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	// A second pooled connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(&model.Bean{}, &model.DrinkLog{}))

	suite.repository = repository.Repository{DB: db, Logger: logger}
}

func (suite *StoreSuite) mustAddBean(bean model.Bean) *model.Bean {
	created, err := suite.repository.AddBean(context.Background(), bean)
	suite.Require().NoError(err)

	return created
}

func (suite *StoreSuite) mustAddDrink(drink model.DrinkLog) *model.DrinkLog {
	created, err := suite.repository.AddDrink(context.Background(), drink)
	suite.Require().NoError(err)

	return created
}
