package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// thumbnailBound is the side of the bounding box thumbnails must fit in.
const thumbnailBound = 400

const dirPerm = 0o755

var ErrNotAnImage = errors.New("uploaded file is not a decodable image")

// Save writes the uploaded bytes under uploadDir and a size-bounded thumbnail
// under thumbDir, both using a collision-free variant of the original filename.
// When the payload cannot be decoded as an image the already-written original
// is left on disk and an error wrapping ErrNotAnImage is returned.
func Save(data []byte, originalName, uploadDir, thumbDir string) (string, string, error) {
	if err := os.MkdirAll(uploadDir, dirPerm); err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(thumbDir, dirPerm); err != nil {
		return "", "", err
	}

	name := filepath.Base(originalName)
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}

	target := resolveTarget(uploadDir, name)

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", "", err
	}

	thumbPath := filepath.Join(thumbDir, filepath.Base(target))
	if err := writeThumbnail(data, thumbPath); err != nil {
		return "", "", err
	}

	return target, thumbPath, nil
}

// resolveTarget appends -1, -2, ... to the filename stem until the path is
// free. Two concurrent uploads of the same name can race onto the same
// disambiguated path; acceptable for a single-user deployment.
func resolveTarget(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	target := filepath.Join(dir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
			return target
		}

		target = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
	}
}

func writeThumbnail(data []byte, destination string) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	thumb := scaleToFit(img, thumbnailBound)

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck // encode errors are what matter here

	switch format {
	case "png":
		return png.Encode(out, thumb)
	case "gif":
		return gif.Encode(out, thumb, nil)
	default:
		return jpeg.Encode(out, thumb, nil)
	}
}

// scaleToFit shrinks the image to fit within a bound x bound box, preserving
// aspect ratio. Images already inside the box are returned unchanged.
func scaleToFit(img image.Image, bound int) image.Image {
	size := img.Bounds().Size()
	if size.X <= bound && size.Y <= bound {
		return img
	}

	scale := float64(bound) / float64(size.X)
	if size.Y > size.X {
		scale = float64(bound) / float64(size.Y)
	}

	width := int(float64(size.X) * scale)
	height := int(float64(size.Y) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	return dst
}
