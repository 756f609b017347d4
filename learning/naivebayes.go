package learning

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MultinomialNB is a binary multinomial Naive Bayes classifier over non-negative features. Class 0 is the
// negative class and class 1 the positive class.
type MultinomialNB struct {
	// Alpha is the additive (Laplace/Lidstone) smoothing parameter.
	Alpha float64

	classLogPrior  []float64
	featureLogProb *mat.Dense
}

// NewMultinomialNB creates a classifier with Laplace smoothing.
func NewMultinomialNB() *MultinomialNB {
	return &MultinomialNB{Alpha: 1}
}

// Train fits the class priors and per-class feature probabilities.
func (nb *MultinomialNB) Train(X []Features, y []float64, dims int) error {
	if len(X) == 0 || dims <= 0 {
		return errors.Wrap(ErrEmpty, "training naive bayes")
	}
	if len(X) != len(y) {
		return errors.Errorf("training naive bayes: %d documents but %d labels", len(X), len(y))
	}
	if nb.Alpha < 0 {
		return errors.Errorf("training naive bayes: negative smoothing %v", nb.Alpha)
	}

	classCount := make([]float64, 2)
	featureCount := mat.NewDense(2, dims, nil)
	for i, x := range X {
		c := 0
		if y[i] > 0 {
			c = 1
		}
		classCount[c]++
		row := featureCount.RawRowView(c)
		for _, f := range x {
			if f.Score < 0 {
				return errors.Errorf("training naive bayes: negative feature %d in document %d", f.ID, i)
			}
			if f.ID < dims {
				row[f.ID] += f.Score
			}
		}
	}

	n := floats.Sum(classCount)
	nb.classLogPrior = make([]float64, 2)
	for c := range classCount {
		nb.classLogPrior[c] = math.Log(classCount[c] / n)
	}

	nb.featureLogProb = mat.NewDense(2, dims, nil)
	for c := 0; c < 2; c++ {
		counts := featureCount.RawRowView(c)
		logProb := nb.featureLogProb.RawRowView(c)
		total := math.Log(floats.Sum(counts) + nb.Alpha*float64(dims))
		for j, count := range counts {
			logProb[j] = math.Log(count+nb.Alpha) - total
		}
	}
	return nil
}

// JointLogLikelihood is log P(c) + Σ x_j log P(j|c) for the negative and positive class.
func (nb *MultinomialNB) JointLogLikelihood(x Features) []float64 {
	jll := make([]float64, 2)
	for c := range jll {
		jll[c] = nb.classLogPrior[c] + x.Dot(nb.featureLogProb.RawRowView(c))
	}
	return jll
}

// Predict returns 1 when the positive class is strictly more likely. An untrained classifier predicts 0.
func (nb *MultinomialNB) Predict(x Features) float64 {
	if nb.featureLogProb == nil {
		return 0
	}
	return float64(floats.MaxIdx(nb.JointLogLikelihood(x)))
}

// PredictProba is the posterior probability of the positive class.
func (nb *MultinomialNB) PredictProba(x Features) float64 {
	if nb.featureLogProb == nil {
		return 0
	}
	jll := nb.JointLogLikelihood(x)
	return math.Exp(jll[1] - floats.LogSumExp(jll))
}
