// Package learning provides the feature extraction and classification models used to predict genres.
package learning

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotFitted is returned when a model is used before it has been fit.
	ErrNotFitted = errors.New("model has not been fit")
	// ErrEmpty is returned when there is nothing to learn from or predict.
	ErrEmpty = errors.New("no samples")
)

// Classifier makes a binary decision for a single document.
type Classifier interface {
	Predict(x Features) float64
}

// TrainableClassifier is a Classifier that can be fit to labelled documents. Labels are 0 or 1 and the
// documents have dims features.
type TrainableClassifier interface {
	Classifier
	Train(X []Features, y []float64, dims int) error
}

// MultiLabelClassifier predicts a row of 0/1 labels per document.
type MultiLabelClassifier interface {
	Fit(X []Features, Y mat.Matrix, dims int) error
	Predict(X []Features) (*mat.Dense, error)
}
