// Package export serializes the full dataset to JSON, CSV and a zip bundle
// that also carries the uploaded media files.
package export

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"droscher.com/BrewNotes/pkg/model"
)

type Payload struct {
	Beans  []Bean  `json:"beans"`
	Drinks []Drink `json:"drinks"`
}

// JSON renders every field of every bean and drink, dates as strings.
func JSON(beans []*model.Bean, drinks []*model.DrinkLog) ([]byte, error) {
	payload := Payload{
		Beans:  BeansFromModel(beans),
		Drinks: DrinksFromModel(drinks),
	}

	return json.Marshal(payload)
}

// CSV renders the beans table and the drinks table concatenated, each behind a
// comment-style section header. An empty table yields an empty section.
func CSV(beans []*model.Bean, drinks []*model.DrinkLog) (string, error) {
	beansCSV, err := tableCSV(beanHeader, beanRecords(beans))
	if err != nil {
		return "", err
	}

	drinksCSV, err := tableCSV(drinkHeader, drinkRecords(drinks))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("# beans.csv\n%s\n# drinks.csv\n%s", beansCSV, drinksCSV), nil
}

// Zip materializes the archive at destination: export.json, beans.csv,
// drinks.csv plus every file under uploadDir re-rooted below uploads/.
// Concurrent exports overwrite each other's destination file; acceptable for a
// single-user deployment.
func Zip(beans []*model.Bean, drinks []*model.DrinkLog, uploadDir, destination string) (err error) {
	out, err := os.Create(destination)
	if err != nil {
		return err
	}

	archive := zip.NewWriter(out)

	defer func() {
		err = multierr.Append(err, archive.Close())
		err = multierr.Append(err, out.Close())
	}()

	payload, err := JSON(beans, drinks)
	if err != nil {
		return err
	}

	if err = writeMember(archive, "export.json", payload); err != nil {
		return err
	}

	beansCSV, err := tableCSV(beanHeader, beanRecords(beans))
	if err != nil {
		return err
	}

	if err = writeMember(archive, "beans.csv", []byte(beansCSV)); err != nil {
		return err
	}

	drinksCSV, err := tableCSV(drinkHeader, drinkRecords(drinks))
	if err != nil {
		return err
	}

	if err = writeMember(archive, "drinks.csv", []byte(drinksCSV)); err != nil {
		return err
	}

	return addUploads(archive, uploadDir)
}

func writeMember(archive *zip.Writer, name string, data []byte) error {
	member, err := archive.Create(name)
	if err != nil {
		return err
	}

	_, err = member.Write(data)

	return err
}

func addUploads(archive *zip.Writer, uploadDir string) error {
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(uploadDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(uploadDir, path)
		if err != nil {
			return err
		}

		member, err := archive.Create("uploads/" + filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}

		_, err = io.Copy(member, file)

		return multierr.Append(err, file.Close())
	})
}

func tableCSV(header []string, records [][]string) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	var buf strings.Builder

	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.WriteAll(records); err != nil {
		return "", err
	}

	writer.Flush()

	return buf.String(), writer.Error()
}
