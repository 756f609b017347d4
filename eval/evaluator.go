// Package eval computes multi-label classification measures over 0/1 label matrices.
package eval

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Evaluator scores a predicted label matrix against a ground truth matrix of the same shape.
type Evaluator interface {
	Score(truth, pred mat.Matrix) float64
	Name() string
}

// Evaluators maps configuration names onto measures.
var Evaluators = map[string]Evaluator{
	"accuracy":  Accuracy,
	"precision": Precision,
	"recall":    Recall,
	"f1":        F1Measure,
	"f0.5":      F05Measure,
	"f3":        F3Measure,
	"hamming":   HammingLoss,
}

// Lookup returns the measures with the given configuration names, in order.
func Lookup(names ...string) ([]Evaluator, error) {
	evaluators := make([]Evaluator, len(names))
	for i, name := range names {
		e, ok := Evaluators[name]
		if !ok {
			return nil, errors.Errorf("unknown measure %q", name)
		}
		evaluators[i] = e
	}
	return evaluators, nil
}

// Evaluate scores the predictions using supplied evaluation measurements.
func Evaluate(evaluators []Evaluator, truth, pred mat.Matrix) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, e := range evaluators {
		scores[e.Name()] = e.Score(truth, pred)
	}
	return scores
}

// EvaluateLabels scores every label column on its own, keyed by label then evaluator.
func EvaluateLabels(evaluators []Evaluator, truth, pred *mat.Dense, labels []string) map[string]map[string]float64 {
	r, c := pred.Dims()
	scores := make(map[string]map[string]float64, c)
	for j := 0; j < c && j < len(labels); j++ {
		scores[labels[j]] = Evaluate(evaluators, truth.Slice(0, r, j, j+1), pred.Slice(0, r, j, j+1))
	}
	return scores
}

// Align truncates both matrices to the rows they share. The rows are assumed to describe the same
// documents in the same order; nothing here can check that.
func Align(truth, pred *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	tr, tc := truth.Dims()
	pr, pc := pred.Dims()
	if tc != pc {
		return nil, nil, errors.Errorf("aligning labels: %d truth columns but %d predicted", tc, pc)
	}
	n := tr
	if pr < n {
		n = pr
	}
	if n == 0 {
		return nil, nil, errors.New("aligning labels: no rows to compare")
	}
	return truth.Slice(0, n, 0, tc).(*mat.Dense), pred.Slice(0, n, 0, pc).(*mat.Dense), nil
}
