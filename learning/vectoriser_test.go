package learning_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hscells/genre/learning"
)

var plots = []string{
	"A funny movie about friends",
	"Heroes save the day",
}

func TestVectoriserVocabulary(t *testing.T) {
	v := learning.NewTfidfVectoriser(5000)
	if err := v.Fit(plots); err != nil {
		t.Fatal(err)
	}
	want := []string{"about", "day", "friends", "funny", "heroes", "movie", "save", "the"}
	if diff := cmp.Diff(want, v.Vocabulary()); diff != "" {
		t.Errorf("vocabulary (-want +got):\n%s", diff)
	}
	if v.Dimensions() != len(want) {
		t.Errorf("dimensions %d", v.Dimensions())
	}
}

func TestVectoriserMaxFeatures(t *testing.T) {
	v := learning.NewTfidfVectoriser(2)
	if err := v.Fit([]string{"bb bb aa", "cc aa"}); err != nil {
		t.Fatal(err)
	}
	// aa and bb both occur twice; cc once.
	if diff := cmp.Diff([]string{"aa", "bb"}, v.Vocabulary()); diff != "" {
		t.Errorf("vocabulary (-want +got):\n%s", diff)
	}

	v = learning.NewTfidfVectoriser(1)
	if err := v.Fit([]string{"zz yy", "yy zz"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"yy"}, v.Vocabulary()); diff != "" {
		t.Errorf("ties should break alphabetically (-want +got):\n%s", diff)
	}
}

func TestVectoriserTransform(t *testing.T) {
	v := learning.NewTfidfVectoriser(5000)
	X, err := v.FitTransform(plots)
	if err != nil {
		t.Fatal(err)
	}
	if len(X) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(X))
	}
	// Each term of the first document occurs once and in one document, so the weights are equal.
	for _, f := range X[0] {
		if math.Abs(f.Score-0.5) > 1e-12 {
			t.Errorf("feature %d has score %v, want 0.5", f.ID, f.Score)
		}
	}
	for _, x := range X {
		var sq float64
		for _, f := range x {
			sq += f.Score * f.Score
		}
		if math.Abs(sq-1) > 1e-12 {
			t.Errorf("vector not unit length: %v", sq)
		}
		for i := 1; i < len(x); i++ {
			if x[i-1].ID >= x[i].ID {
				t.Errorf("features not sorted by id: %v", x)
			}
		}
	}
}

func TestVectoriserDeterministic(t *testing.T) {
	v := learning.NewTfidfVectoriser(5000)
	if err := v.Fit(plots); err != nil {
		t.Fatal(err)
	}
	a, err := v.Transform([]string{"Heroes save the day, the heroes"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := v.Transform([]string{"Heroes save the day, the heroes"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("transform is not deterministic (-first +second):\n%s", diff)
	}
}

func TestVectoriserUnseenTerms(t *testing.T) {
	v := learning.NewTfidfVectoriser(5000)
	if err := v.Fit(plots); err != nil {
		t.Fatal(err)
	}
	dims := v.Dimensions()
	X, err := v.Transform([]string{"a funny heroic adventure", "completely novel words"})
	if err != nil {
		t.Fatal(err)
	}
	if v.Dimensions() != dims {
		t.Errorf("transform changed the width from %d to %d", dims, v.Dimensions())
	}
	if len(X[0]) != 1 || math.Abs(X[0][0].Score-1) > 1e-12 {
		t.Errorf("expected only the funny feature, got %v", X[0])
	}
	if len(X[1]) != 0 {
		t.Errorf("expected an empty vector, got %v", X[1])
	}
	for _, x := range X {
		for _, f := range x {
			if f.ID >= dims {
				t.Errorf("feature id %d outside width %d", f.ID, dims)
			}
		}
	}
}

func TestVectoriserErrors(t *testing.T) {
	v := learning.NewTfidfVectoriser(5000)
	if _, err := v.Transform(plots); err != learning.ErrNotFitted {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}
	if err := v.Fit(nil); err == nil {
		t.Error("expected an error fitting no documents")
	}
	if err := v.Fit([]string{"a", "b"}); err == nil {
		t.Error("expected an error fitting documents without terms")
	}
}
