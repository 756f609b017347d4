// Package output provides the formats the predictions and their evaluation are written in.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prediction is the genres assigned to a movie.
type Prediction struct {
	Name   string
	Genres []string
}

// String formats the prediction as `<name> ::: <genre>, <genre>`.
func (p Prediction) String() string {
	return fmt.Sprintf("%s ::: %s", p.Name, strings.Join(p.Genres, ", "))
}

// WritePredictions writes one line per prediction, in order.
func WritePredictions(w io.Writer, predictions []Prediction) error {
	b := bufio.NewWriter(w)
	for _, p := range predictions {
		if _, err := b.WriteString(p.String() + "\n"); err != nil {
			return err
		}
	}
	return b.Flush()
}
