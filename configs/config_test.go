package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BrewNotes/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("sqlite", config.DB.Engine)
	suite.Equal("/tmp/brewnotes-test/app.db", config.DB.Path)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("testdata/dist", config.Server.FrontendDir)
	suite.Equal("/tmp/brewnotes-test", config.Storage.DataDir)
	suite.Equal("/tmp/brewnotes-test/uploads", config.Storage.UploadDir)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWNOTES_DB_ENGINE", "postgres")
	suite.T().Setenv("BREWNOTES_DB_HOST", "test.local")
	suite.T().Setenv("BREWNOTES_DB_PORT", "1234")
	suite.T().Setenv("BREWNOTES_DB_USER", "testuser")
	suite.T().Setenv("BREWNOTES_DB_PASSWORD", "test123")
	suite.T().Setenv("BREWNOTES_DB_DATABASE", "testdb")
	suite.T().Setenv("BREWNOTES_SERVER_PORT", "666")
	suite.T().Setenv("BREWNOTES_STORAGE_DATADIR", "/srv/data")
	suite.T().Setenv("BREWNOTES_STORAGE_UPLOADDIR", "/srv/data/uploads")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Engine)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
	suite.Equal("/srv/data", config.Storage.DataDir)
	suite.Equal("/srv/data/uploads", config.Storage.UploadDir)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BREWNOTES_DB_PATH", "/env/app.db")
	suite.T().Setenv("BREWNOTES_STORAGE_UPLOADDIR", "/env/uploads")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("/env/app.db", config.DB.Path)
	suite.Equal("/env/uploads", config.Storage.UploadDir)
	suite.Equal(666, config.Server.Port)
	suite.Equal("/tmp/brewnotes-test", config.Storage.DataDir)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileFallsBackToDefaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("sqlite", config.DB.Engine)
	suite.Equal("/data/app.db", config.DB.Path)
	suite.Equal(8080, config.Server.Port)
	suite.Equal("/data", config.Storage.DataDir)
	suite.Equal("/data/uploads", config.Storage.UploadDir)
}
