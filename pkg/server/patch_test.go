package server_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/BrewNotes/pkg/server"
)

type PatchTestSuite struct {
	suite.Suite
}

func TestPatchTestSuite(t *testing.T) {
	suite.Run(t, new(PatchTestSuite))
}

func (suite *PatchTestSuite) TestOptional_DistinguishesAbsentNullAndValue() {
	var patch server.BeanPatch
	suite.Require().NoError(json.Unmarshal([]byte(`{"roaster": null, "origin": "Huila"}`), &patch))

	suite.False(patch.Name.Set)

	suite.True(patch.Roaster.Set)
	suite.False(patch.Roaster.Valid)

	suite.True(patch.Origin.Set)
	suite.True(patch.Origin.Valid)
	suite.Equal("Huila", patch.Origin.Value)
}

func (suite *PatchTestSuite) TestOptional_NumericAndBoolValues() {
	var patch server.DrinkPatch
	suite.Require().NoError(json.Unmarshal([]byte(`{"grind_setting": 14, "dialed_in": true, "milk_volume_ml": null}`), &patch))

	suite.True(patch.GrindSetting.Set)
	suite.True(patch.GrindSetting.Valid)
	suite.Equal(14, patch.GrindSetting.Value)

	suite.True(patch.DialedIn.Set)
	suite.True(patch.DialedIn.Valid)
	suite.True(patch.DialedIn.Value)

	suite.True(patch.MilkVolumeML.Set)
	suite.False(patch.MilkVolumeML.Valid)
	suite.Zero(patch.MilkVolumeML.Value)
}
