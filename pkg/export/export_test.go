package export_test

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/BrewNotes/pkg/export"
	"droscher.com/BrewNotes/pkg/model"
)

type ExportTestSuite struct {
	suite.Suite
	beans  []*model.Bean
	drinks []*model.DrinkLog
}

func TestExportTestSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (suite *ExportTestSuite) SetupTest() {
	roastDate := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	suite.beans = []*model.Bean{{
		ID:                  "bean-1",
		Name:                "Ethiopia Yirgacheffe",
		Roaster:             pointy.String("Corner Roastery"),
		RoastDate:           &roastDate,
		BagSizeG:            pointy.Int(250),
		Price:               pointy.Float64(16.5),
		CurrentBestSettings: model.SettingsMap{"grind_setting": float64(12)},
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}}

	suite.drinks = []*model.DrinkLog{{
		ID:               "drink-1",
		CreatedAt:        createdAt,
		BeanID:           "bean-1",
		DrinkType:        "espresso",
		TemperatureLevel: "hot",
		BodyLevel:        "medium",
		Order:            "coffee_first",
		CoffeeVolumeML:   30,
		MilkVolumeML:     150,
		StrengthLevel:    "strong",
		GrindSetting:     12,
		OverallRating:    5,
		Sweetness:        4,
		Bitterness:       2,
		Acidity:          3,
		BodyMouthfeel:    4,
		Balance:          5,
		WouldMakeAgain:   true,
	}}
}

func (suite *ExportTestSuite) TestJSON_RendersFullDataset() {
	data, err := export.JSON(suite.beans, suite.drinks)
	suite.Require().NoError(err)

	var payload export.Payload
	suite.Require().NoError(json.Unmarshal(data, &payload))

	suite.Require().Len(payload.Beans, 1)
	suite.Equal("bean-1", payload.Beans[0].ID)
	suite.Equal("Ethiopia Yirgacheffe", payload.Beans[0].Name)
	suite.Equal("2026-07-15", *payload.Beans[0].RoastDate)
	suite.Nil(payload.Beans[0].OpenDate)
	suite.Equal("2026-08-01T09:30:00Z", payload.Beans[0].CreatedAt)

	suite.Require().Len(payload.Drinks, 1)
	suite.Equal("drink-1", payload.Drinks[0].ID)
	suite.Equal("bean-1", payload.Drinks[0].BeanID)
	suite.Equal(5, payload.Drinks[0].OverallRating)
	suite.True(payload.Drinks[0].WouldMakeAgain)
}

func (suite *ExportTestSuite) TestJSON_EmptyDatasetHasEmptyArrays() {
	data, err := export.JSON(nil, nil)
	suite.Require().NoError(err)
	suite.JSONEq(`{"beans": [], "drinks": []}`, string(data))
}

func (suite *ExportTestSuite) TestCSV_RendersBothSections() {
	text, err := export.CSV(suite.beans, suite.drinks)
	suite.Require().NoError(err)

	sections := strings.SplitN(text, "# drinks.csv\n", 2)
	suite.Require().Len(sections, 2)
	suite.True(strings.HasPrefix(sections[0], "# beans.csv\n"))

	beanRows := parseCSV(suite.T(), strings.TrimPrefix(sections[0], "# beans.csv\n"))
	suite.Require().Len(beanRows, 2)
	suite.Equal("id", beanRows[0][0])
	suite.Equal("name", beanRows[0][1])
	suite.Equal("bean-1", beanRows[1][0])
	suite.Equal("Ethiopia Yirgacheffe", beanRows[1][1])

	drinkRows := parseCSV(suite.T(), sections[1])
	suite.Require().Len(drinkRows, 2)
	suite.Equal("id", drinkRows[0][0])
	suite.Contains(drinkRows[0], "grind_setting")
	suite.Contains(drinkRows[0], "would_make_again")
	suite.Equal("drink-1", drinkRows[1][0])
	suite.Equal("bean-1", drinkRows[1][2])
}

func (suite *ExportTestSuite) TestCSV_EmptyTablesYieldEmptySections() {
	text, err := export.CSV(nil, nil)
	suite.Require().NoError(err)
	suite.Equal("# beans.csv\n\n# drinks.csv\n", text)
}

func (suite *ExportTestSuite) TestZip_BundlesDatasetAndUploads() {
	root := suite.T().TempDir()

	uploadDir := filepath.Join(root, "uploads")
	photoPath := filepath.Join(uploadDir, "beans", "photo.png")
	suite.Require().NoError(os.MkdirAll(filepath.Dir(photoPath), 0o755))
	suite.Require().NoError(os.WriteFile(photoPath, []byte("not really a png"), 0o644))

	destination := filepath.Join(root, "export.zip")
	suite.Require().NoError(export.Zip(suite.beans, suite.drinks, uploadDir, destination))

	reader, err := zip.OpenReader(destination)
	suite.Require().NoError(err)
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		names = append(names, file.Name)
	}

	suite.Contains(names, "export.json")
	suite.Contains(names, "beans.csv")
	suite.Contains(names, "drinks.csv")
	suite.Contains(names, "uploads/beans/photo.png")
}

func (suite *ExportTestSuite) TestZip_ToleratesMissingUploadDir() {
	root := suite.T().TempDir()

	destination := filepath.Join(root, "export.zip")
	err := export.Zip(suite.beans, suite.drinks, filepath.Join(root, "no-such-dir"), destination)
	suite.Require().NoError(err)

	reader, err := zip.OpenReader(destination)
	suite.Require().NoError(err)
	defer reader.Close()

	suite.Len(reader.File, 3)
}

func parseCSV(t *testing.T, text string) [][]string {
	t.Helper()

	rows, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	return rows
}
