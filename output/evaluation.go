package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// EvaluationFormatter formats evaluation scores keyed by measure name.
type EvaluationFormatter func(scores map[string]float64) (string, error)

// textOrder fixes the position of the usual measures in the metrics block.
var textOrder = []string{"Accuracy", "Precision", "Recall", "F1-score"}

// TextEvaluationFormatter outputs the metrics block appended to the predictions. Only the measures
// present in scores are written: the usual four first, then any others by name. Accuracy is a
// percentage, the other measures are two decimal ratios.
func TextEvaluationFormatter(scores map[string]float64) (string, error) {
	var b strings.Builder
	b.WriteString("\n\nModel Evaluation Metrics: \n")

	seen := make(map[string]bool, len(textOrder))
	names := make([]string, 0, len(scores))
	for _, name := range textOrder {
		seen[name] = true
		if _, ok := scores[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range scores {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		if name == "Accuracy" {
			fmt.Fprintf(&b, "Accuracy: %.2f%%\n", scores[name]*100)
			continue
		}
		fmt.Fprintf(&b, "%s: %.2f\n", name, scores[name])
	}
	return b.String(), nil
}

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(scores map[string]float64) (string, error) {
	v, err := json.MarshalIndent(scores, "", "    ")
	if err != nil {
		return "", err
	}
	return "\n" + string(v) + "\n", nil
}

// EvaluationFormatters maps configuration names onto formatters.
var EvaluationFormatters = map[string]EvaluationFormatter{
	"text": TextEvaluationFormatter,
	"json": JsonEvaluationFormatter,
}
