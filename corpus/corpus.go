// Package corpus loads the delimited movie plot files used for training and evaluation.
package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Separator splits the fields of a line. Files carry no header row.
const Separator = ":::"

// GenreSeparator splits the genre field of a training record.
const GenreSeparator = ", "

const maxLineSize = 16 * 1024 * 1024

// TrainingRecord is a labelled movie.
type TrainingRecord struct {
	SerialNumber string
	Name         string
	Genre        string
	Plot         string
}

// Genres splits the genre field into its individual tokens.
func (r TrainingRecord) Genres() []string {
	var genres []string
	for _, g := range strings.Split(r.Genre, GenreSeparator) {
		g = strings.TrimSpace(g)
		if len(g) > 0 {
			genres = append(genres, g)
		}
	}
	return genres
}

// EvaluationRecord is an unlabelled movie.
type EvaluationRecord struct {
	SerialNumber string
	Name         string
	Plot         string
}

// Load reads the file at path and splits every non-blank line into exactly columns fields. Surrounding
// whitespace is trimmed from each field. A file without any records is an error.
func Load(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var rows [][]string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 64*1024), maxLineSize)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimRight(s.Text(), "\r")
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		fields := strings.Split(text, Separator)
		if len(fields) != columns {
			return nil, errors.Errorf("%s:%d: expected %d fields, saw %d", path, line, columns, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("%s: no records", path)
	}
	return rows, nil
}

// LoadTraining loads labelled records (serial number, name, genre, plot).
func LoadTraining(path string) ([]TrainingRecord, error) {
	rows, err := Load(path, 4)
	if err != nil {
		return nil, err
	}
	records := make([]TrainingRecord, len(rows))
	for i, row := range rows {
		records[i] = TrainingRecord{
			SerialNumber: row[0],
			Name:         row[1],
			Genre:        row[2],
			Plot:         row[3],
		}
	}
	return records, nil
}

// LoadEvaluation loads unlabelled records (serial number, name, plot).
func LoadEvaluation(path string) ([]EvaluationRecord, error) {
	rows, err := Load(path, 3)
	if err != nil {
		return nil, err
	}
	records := make([]EvaluationRecord, len(rows))
	for i, row := range rows {
		records[i] = EvaluationRecord{
			SerialNumber: row[0],
			Name:         row[1],
			Plot:         row[2],
		}
	}
	return records, nil
}
