package learning

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MultiOutputClassifier fits one independent binary classifier per label column. No dependency between
// labels is modelled.
type MultiOutputClassifier struct {
	New func() TrainableClassifier

	estimators []TrainableClassifier
}

// NewMultiOutputClassifier creates a classifier that fits a MultinomialNB per label.
func NewMultiOutputClassifier() *MultiOutputClassifier {
	return &MultiOutputClassifier{
		New: func() TrainableClassifier {
			return NewMultinomialNB()
		},
	}
}

// Fit trains an estimator for each column of Y.
func (m *MultiOutputClassifier) Fit(X []Features, Y mat.Matrix, dims int) error {
	if len(X) == 0 {
		return errors.Wrap(ErrEmpty, "fitting multi-output classifier")
	}
	r, c := Y.Dims()
	if r != len(X) {
		return errors.Errorf("fitting multi-output classifier: %d documents but %d label rows", len(X), r)
	}
	estimators := make([]TrainableClassifier, c)
	for j := 0; j < c; j++ {
		e := m.New()
		if err := e.Train(X, mat.Col(nil, j, Y), dims); err != nil {
			return errors.Wrapf(err, "label %d", j)
		}
		estimators[j] = e
	}
	m.estimators = estimators
	return nil
}

// Predict returns a documents × labels matrix of 0/1 decisions.
func (m *MultiOutputClassifier) Predict(X []Features) (*mat.Dense, error) {
	if m.estimators == nil {
		return nil, ErrNotFitted
	}
	if len(X) == 0 || len(m.estimators) == 0 {
		return nil, errors.Wrap(ErrEmpty, "predicting")
	}
	P := mat.NewDense(len(X), len(m.estimators), nil)
	for i, x := range X {
		for j, e := range m.estimators {
			P.Set(i, j, e.Predict(x))
		}
	}
	return P, nil
}

// Estimators returns the fitted per-label classifiers in column order.
func (m *MultiOutputClassifier) Estimators() []TrainableClassifier {
	return m.estimators
}

var (
	_ MultiLabelClassifier = (*MultiOutputClassifier)(nil)
	_ TrainableClassifier  = (*MultinomialNB)(nil)
)
