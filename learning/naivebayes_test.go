package learning_test

import (
	"math"
	"testing"

	"github.com/hscells/genre/learning"
	"gonum.org/v1/gonum/mat"
)

func fitted(t *testing.T) (*learning.TfidfVectoriser, []learning.Features) {
	t.Helper()
	v := learning.NewTfidfVectoriser(5000)
	X, err := v.FitTransform(plots)
	if err != nil {
		t.Fatal(err)
	}
	return v, X
}

func TestMultinomialNB(t *testing.T) {
	v, X := fitted(t)
	nb := learning.NewMultinomialNB()
	if err := nb.Train(X, []float64{1, 0}, v.Dimensions()); err != nil {
		t.Fatal(err)
	}

	test, err := v.Transform([]string{"a funny heroic adventure", "heroes"})
	if err != nil {
		t.Fatal(err)
	}
	if p := nb.Predict(test[0]); p != 1 {
		t.Errorf("expected the funny plot to be positive, got %v", p)
	}
	if p := nb.Predict(test[1]); p != 0 {
		t.Errorf("expected the heroes plot to be negative, got %v", p)
	}

	// log P(funny|1) = log(1.5/10), log P(funny|0) = log(1/10), equal priors.
	want := 0.15 / (0.15 + 0.1)
	if p := nb.PredictProba(test[0]); math.Abs(p-want) > 1e-9 {
		t.Errorf("probability %v, want %v", p, want)
	}
}

func TestMultinomialNBSingleClass(t *testing.T) {
	v, X := fitted(t)
	nb := learning.NewMultinomialNB()
	if err := nb.Train(X, []float64{0, 0}, v.Dimensions()); err != nil {
		t.Fatal(err)
	}
	for _, x := range X {
		if p := nb.Predict(x); p != 0 {
			t.Errorf("a class never seen in training was predicted")
		}
	}
	if err := nb.Train(X, []float64{1, 1}, v.Dimensions()); err != nil {
		t.Fatal(err)
	}
	for _, x := range X {
		if p := nb.Predict(x); p != 1 {
			t.Errorf("expected the only class seen to be predicted")
		}
	}
}

func TestMultinomialNBErrors(t *testing.T) {
	nb := learning.NewMultinomialNB()
	if err := nb.Train(nil, nil, 3); err == nil {
		t.Error("expected an error training on nothing")
	}
	X := []learning.Features{{learning.NewFeature(0, 1)}}
	if err := nb.Train(X, []float64{1, 0}, 3); err == nil {
		t.Error("expected an error for mismatched labels")
	}
	if err := nb.Train([]learning.Features{{learning.NewFeature(0, -1)}}, []float64{1}, 3); err == nil {
		t.Error("expected an error for a negative feature")
	}
}

func TestMultiOutputClassifier(t *testing.T) {
	v, X := fitted(t)
	b := learning.NewMultiLabelBinariser("action", "adventure", "comedy", "history")
	Y, err := b.FitTransform([][]string{{"comedy"}, {"action", "adventure"}})
	if err != nil {
		t.Fatal(err)
	}

	clf := learning.NewMultiOutputClassifier()
	if _, err := clf.Predict(X); err != learning.ErrNotFitted {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}
	if err := clf.Fit(X, Y, v.Dimensions()); err != nil {
		t.Fatal(err)
	}
	if n := len(clf.Estimators()); n != 4 {
		t.Errorf("expected one estimator per label, got %d", n)
	}

	P, err := clf.Predict(X)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(Y, P) {
		t.Errorf("expected the training labels to be recovered\n%v", mat.Formatted(P))
	}

	test, err := v.Transform([]string{"a funny heroic adventure"})
	if err != nil {
		t.Fatal(err)
	}
	P, err = clf.Predict(test)
	if err != nil {
		t.Fatal(err)
	}
	want := mat.NewDense(1, 4, []float64{0, 0, 1, 0})
	if !mat.Equal(want, P) {
		t.Errorf("unexpected prediction\n%v", mat.Formatted(P))
	}

	if err := clf.Fit(X[:1], Y, v.Dimensions()); err == nil {
		t.Error("expected an error for mismatched rows")
	}
}
