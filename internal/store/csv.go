package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"ProposalEngine/internal/model"
)

// ReadCSV parses "date,value" rows into a series sorted by date. A header row
// is skipped when its second column is not a number. Dates must be "YYYY-MM"
// and unique; values are fractional returns (0.012 for 1.2%).
func ReadCSV(r io.Reader) (model.ReturnSeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	series := model.ReturnSeries{}
	seen := make(map[string]int)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		date := strings.TrimSpace(record[0])
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: invalid value %q: %w", line, record[1], err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("line %d: non-finite value %q", line, record[1])
		}
		if _, err := model.ParseMonth(date); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if prev, dup := seen[date]; dup {
			return nil, fmt.Errorf("line %d: duplicate month %s (first on line %d)", line, date, prev)
		}
		seen[date] = line
		series = append(series, model.MonthlyReturn{Date: date, Value: value})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series, nil
}
