package eval

import (
	"gonum.org/v1/gonum/mat"
)

// Confusion holds counts pooled over every cell of a label matrix.
type Confusion struct {
	TruePositive  float64
	FalsePositive float64
	FalseNegative float64
	TrueNegative  float64
}

// Count pools the cells of truth and pred. Any non-zero cell is a positive.
func Count(truth, pred mat.Matrix) Confusion {
	var c Confusion
	r, cols := pred.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			t, p := truth.At(i, j) != 0, pred.At(i, j) != 0
			switch {
			case t && p:
				c.TruePositive++
			case p:
				c.FalsePositive++
			case t:
				c.FalseNegative++
			default:
				c.TrueNegative++
			}
		}
	}
	return c
}

// Precision is TP/(TP+FP), or zero when nothing is predicted.
func (c Confusion) Precision() float64 {
	if c.TruePositive+c.FalsePositive == 0 {
		return 0
	}
	return c.TruePositive / (c.TruePositive + c.FalsePositive)
}

// Recall is TP/(TP+FN), or zero when nothing is relevant.
func (c Confusion) Recall() float64 {
	if c.TruePositive+c.FalseNegative == 0 {
		return 0
	}
	return c.TruePositive / (c.TruePositive + c.FalseNegative)
}

type accuracyEvaluator struct{}
type precisionEvaluator struct{}
type recallEvaluator struct{}
type hammingLoss struct{}

// FMeasure computes micro-averaged f-measure, with the beta parameter controlling the precision and
// recall trade-off.
type FMeasure struct {
	name string
	beta float64
}

var (
	// Accuracy is the fraction of rows predicted exactly.
	Accuracy = accuracyEvaluator{}
	// Precision is micro-averaged precision.
	Precision = precisionEvaluator{}
	// Recall is micro-averaged recall.
	Recall = recallEvaluator{}
	// HammingLoss is the fraction of cells predicted incorrectly.
	HammingLoss = hammingLoss{}

	// F1Measure is f-measure with beta=1.
	F1Measure = FMeasure{name: "F1-score", beta: 1}
	// F05Measure is f-measure with beta=0.5.
	F05Measure = FMeasure{name: "F0.5-score", beta: 0.5}
	// F3Measure is f-measure with beta=3.
	F3Measure = FMeasure{name: "F3-score", beta: 3}
)

func (accuracyEvaluator) Name() string {
	return "Accuracy"
}

func (accuracyEvaluator) Score(truth, pred mat.Matrix) float64 {
	r, c := pred.Dims()
	if r == 0 {
		return 0
	}
	var exact float64
rows:
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if (truth.At(i, j) != 0) != (pred.At(i, j) != 0) {
				continue rows
			}
		}
		exact++
	}
	return exact / float64(r)
}

func (precisionEvaluator) Name() string {
	return "Precision"
}

func (precisionEvaluator) Score(truth, pred mat.Matrix) float64 {
	return Count(truth, pred).Precision()
}

func (recallEvaluator) Name() string {
	return "Recall"
}

func (recallEvaluator) Score(truth, pred mat.Matrix) float64 {
	return Count(truth, pred).Recall()
}

func (hammingLoss) Name() string {
	return "HammingLoss"
}

func (hammingLoss) Score(truth, pred mat.Matrix) float64 {
	c := Count(truth, pred)
	n := c.TruePositive + c.FalsePositive + c.FalseNegative + c.TrueNegative
	if n == 0 {
		return 0
	}
	return (c.FalsePositive + c.FalseNegative) / n
}

func (f FMeasure) Name() string {
	return f.name
}

func (f FMeasure) Score(truth, pred mat.Matrix) float64 {
	c := Count(truth, pred)
	b2 := f.beta * f.beta
	d := (1+b2)*c.TruePositive + b2*c.FalseNegative + c.FalsePositive
	if d == 0 {
		return 0
	}
	return (1 + b2) * c.TruePositive / d
}
