package upload_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/BrewNotes/pkg/upload"
)

type UploadTestSuite struct {
	suite.Suite
	uploadDir string
	thumbDir  string
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}

func (suite *UploadTestSuite) SetupTest() {
	root := suite.T().TempDir()
	suite.uploadDir = filepath.Join(root, "uploads", "beans")
	suite.thumbDir = filepath.Join(suite.uploadDir, "thumbs")
}

func (suite *UploadTestSuite) TestSave_WritesOriginalAndThumbnail() {
	data := pngBytes(suite.T(), 800, 600)

	storedPath, thumbPath, err := upload.Save(data, "photo.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(suite.uploadDir, "photo.png"), storedPath)
	suite.Equal(filepath.Join(suite.thumbDir, "photo.png"), thumbPath)

	stored, err := os.ReadFile(storedPath)
	suite.Require().NoError(err)
	suite.Equal(data, stored)

	thumb := decodeFile(suite.T(), thumbPath)
	suite.Equal(400, thumb.Bounds().Dx())
	suite.Equal(300, thumb.Bounds().Dy())
}

func (suite *UploadTestSuite) TestSave_PreservesFormat() {
	data := pngBytes(suite.T(), 500, 500)

	_, thumbPath, err := upload.Save(data, "photo.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)

	file, err := os.Open(thumbPath)
	suite.Require().NoError(err)
	defer file.Close()

	_, format, err := image.Decode(file)
	suite.Require().NoError(err)
	suite.Equal("png", format)
}

func (suite *UploadTestSuite) TestSave_DoesNotUpscaleSmallImages() {
	data := pngBytes(suite.T(), 100, 80)

	_, thumbPath, err := upload.Save(data, "small.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)

	thumb := decodeFile(suite.T(), thumbPath)
	suite.Equal(100, thumb.Bounds().Dx())
	suite.Equal(80, thumb.Bounds().Dy())
}

func (suite *UploadTestSuite) TestSave_DisambiguatesCollidingNames() {
	data := pngBytes(suite.T(), 10, 10)

	first, _, err := upload.Save(data, "photo.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)

	second, secondThumb, err := upload.Save(data, "photo.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)

	third, _, err := upload.Save(data, "photo.png", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)

	suite.Equal(filepath.Join(suite.uploadDir, "photo.png"), first)
	suite.Equal(filepath.Join(suite.uploadDir, "photo-1.png"), second)
	suite.Equal(filepath.Join(suite.thumbDir, "photo-1.png"), secondThumb)
	suite.Equal(filepath.Join(suite.uploadDir, "photo-2.png"), third)
}

func (suite *UploadTestSuite) TestSave_FallsBackToDefaultName() {
	data := pngBytes(suite.T(), 10, 10)

	storedPath, _, err := upload.Save(data, "", suite.uploadDir, suite.thumbDir)
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(suite.uploadDir, "upload"), storedPath)
}

func (suite *UploadTestSuite) TestSave_NonImageKeepsOriginalOnDisk() {
	data := []byte("definitely not an image")

	storedPath, thumbPath, err := upload.Save(data, "notes.txt", suite.uploadDir, suite.thumbDir)
	suite.Require().ErrorIs(err, upload.ErrNotAnImage)
	suite.Empty(storedPath)
	suite.Empty(thumbPath)

	// The original write is not rolled back.
	written, err := os.ReadFile(filepath.Join(suite.uploadDir, "notes.txt"))
	suite.Require().NoError(err)
	suite.Equal(data, written)
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		t.Fatal(err)
	}

	return img
}
