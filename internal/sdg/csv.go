package sdg

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
)

// File names expected inside a data directory or zip bundle.
const (
	fileUndernourishment = "undernourishment.csv"
	fileProduction       = "production.csv"
	fileSecurity         = "food_security.csv"
	fileNutrition        = "nutrition.csv"
)

// LoadDir reads the four indicator CSV files from a directory. It returns
// the dataset and the number of malformed rows that were skipped.
func LoadDir(dir string) (*Dataset, int, error) {
	open := func(name string) (io.ReadCloser, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return f, nil
	}
	return loadAll(open)
}

// LoadZip reads the four indicator CSV files from a zip bundle held in
// memory. File names are matched on their base name anywhere in the archive.
func LoadZip(data []byte) (*Dataset, int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, fmt.Errorf("reading zip bundle: %w", err)
	}

	open := func(name string) (io.ReadCloser, error) {
		for _, entry := range zr.File {
			if path.Base(entry.Name) == name {
				return entry.Open()
			}
		}
		return nil, fmt.Errorf("zip bundle has no %s", name)
	}
	return loadAll(open)
}

func loadAll(open func(string) (io.ReadCloser, error)) (*Dataset, int, error) {
	ds := &Dataset{}
	skipped := 0

	load := func(name string, parse func(*csvTable) (int, error)) error {
		r, err := open(name)
		if err != nil {
			return err
		}
		defer r.Close() // nolint:errcheck

		table, err := readCSVTable(r)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		n, err := parse(table)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		skipped += n
		return nil
	}

	if err := load(fileUndernourishment, ds.parseUndernourishment); err != nil {
		return nil, 0, err
	}
	if err := load(fileProduction, ds.parseProduction); err != nil {
		return nil, 0, err
	}
	if err := load(fileSecurity, ds.parseSecurity); err != nil {
		return nil, 0, err
	}
	if err := load(fileNutrition, ds.parseNutrition); err != nil {
		return nil, 0, err
	}

	return ds, skipped, nil
}

// csvTable is a parsed CSV file with columns addressable by header name.
// Header matching is case-insensitive; unknown columns are ignored.
type csvTable struct {
	columns map[string]int
	rows    [][]string
}

func readCSVTable(r io.Reader) (*csvTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return &csvTable{columns: columns, rows: records[1:]}, nil
}

func (t *csvTable) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}
	return nil
}

func (t *csvTable) text(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *csvTable) number(row []string, name string) (float64, bool) {
	s := t.text(row, name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (t *csvTable) year(row []string, name string) (int, bool) {
	s := t.text(row, name)
	if s == "" {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2200 {
		return 0, false
	}
	return y, true
}

func (d *Dataset) parseUndernourishment(t *csvTable) (int, error) {
	if err := t.require("region", "year", "rate"); err != nil {
		return 0, err
	}
	skipped := 0
	for _, row := range t.rows {
		region := t.text(row, "region")
		year, yearOK := t.year(row, "year")
		rate, rateOK := t.number(row, "rate")
		if region == "" || !yearOK || !rateOK {
			skipped++
			continue
		}
		if rate < 0 {
			rate = 0
		}
		d.Undernourishment = append(d.Undernourishment, UndernourishmentRate{
			Region: region,
			Year:   year,
			Rate:   rate,
		})
	}
	return skipped, nil
}

func (d *Dataset) parseProduction(t *csvTable) (int, error) {
	if err := t.require("crop", "year", "tonnes"); err != nil {
		return 0, err
	}
	skipped := 0
	for _, row := range t.rows {
		crop := t.text(row, "crop")
		year, yearOK := t.year(row, "year")
		tonnes, tonnesOK := t.number(row, "tonnes")
		if crop == "" || !yearOK || !tonnesOK {
			skipped++
			continue
		}
		if tonnes < 0 {
			tonnes = 0
		}
		d.Production = append(d.Production, CropProduction{
			Crop:   crop,
			Year:   year,
			Tonnes: tonnes,
		})
	}
	return skipped, nil
}

func (d *Dataset) parseSecurity(t *csvTable) (int, error) {
	if err := t.require("country", "year", "level", "population_affected"); err != nil {
		return 0, err
	}
	skipped := 0
	for _, row := range t.rows {
		country := t.text(row, "country")
		year, yearOK := t.year(row, "year")
		level, levelOK := t.number(row, "level")
		population, populationOK := t.number(row, "population_affected")
		if country == "" || !yearOK || !levelOK || !populationOK {
			skipped++
			continue
		}
		if population < 0 {
			population = 0
		}
		d.Security = append(d.Security, SecurityAssessment{
			Country:            country,
			Region:             t.text(row, "region"),
			Year:               year,
			Level:              analytics.Clamp(level, LevelMinimal, LevelEmergency),
			PopulationAffected: population,
		})
	}
	return skipped, nil
}

func (d *Dataset) parseNutrition(t *csvTable) (int, error) {
	if err := t.require("region", "indicator", "year", "rate"); err != nil {
		return 0, err
	}
	skipped := 0
	for _, row := range t.rows {
		region := t.text(row, "region")
		indicator := t.text(row, "indicator")
		year, yearOK := t.year(row, "year")
		rate, rateOK := t.number(row, "rate")
		if region == "" || indicator == "" || !yearOK || !rateOK {
			skipped++
			continue
		}
		if rate < 0 {
			rate = 0
		}
		d.Nutrition = append(d.Nutrition, NutritionRate{
			Region:    region,
			Indicator: indicator,
			Year:      year,
			Rate:      rate,
		})
	}
	return skipped, nil
}
