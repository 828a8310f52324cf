package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"RiskSentinel/internal/model"
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
}

// CSVSource reads a price series from a CSV file. The header row must
// contain "Date" and "Close" columns; any other columns are ignored.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV price source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Prices() ([]model.PricePoint, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	dateIdx, closeIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Date":
			dateIdx = i
		case "Close":
			closeIdx = i
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("csv: required column %q not found in header", "Date")
	}
	if closeIdx < 0 {
		return nil, fmt.Errorf("csv: required column %q not found in header", "Close")
	}

	var points []model.PricePoint
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		date, err := parseDate(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", line, err)
		}
		close, err := strconv.ParseFloat(strings.TrimSpace(rec[closeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: parse close %q: %w", line, rec[closeIdx], err)
		}
		points = append(points, model.PricePoint{Date: date, Close: close})
	}
	return points, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
