package genre

import (
	"github.com/hscells/genre/output"
)

// Result is the output of a pipeline run.
type Result struct {
	RunID string
	// Genres are the label columns, in order.
	Genres      []string
	Predictions []output.Prediction
	// Evaluation is keyed by measure name.
	Evaluation map[string]float64
	// GenreEvaluation is keyed by genre then measure name. Only filled when a report is requested.
	GenreEvaluation map[string]map[string]float64
}

// Label pairs each movie name with its predicted genres. A movie with no predicted genre is given the
// fallback label alone.
func Label(names []string, genres [][]string, fallback string) []output.Prediction {
	predictions := make([]output.Prediction, len(names))
	for i, name := range names {
		var g []string
		if i < len(genres) {
			g = genres[i]
		}
		if len(g) == 0 {
			g = []string{fallback}
		}
		predictions[i] = output.Prediction{Name: name, Genres: g}
	}
	return predictions
}
