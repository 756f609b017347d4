package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
)

// CsvMeasurementFormatter outputs per-genre scores in CSV format, one row per genre (sorted) and one
// column per measure in headers order.
func CsvMeasurementFormatter(scores map[string]map[string]float64, headers []string) (string, error) {
	genres := make([]string, 0, len(scores))
	for g := range scores {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write(append([]string{"Genre"}, headers...)); err != nil {
		return "", err
	}
	for _, g := range genres {
		record := make([]string, len(headers)+1)
		record[0] = g
		for i, h := range headers {
			record[i+1] = strconv.FormatFloat(scores[g][h], 'f', 4, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
