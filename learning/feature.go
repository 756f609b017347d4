package learning

import (
	"math"
	"sort"
)

// Feature is a single weighted dimension of a document vector.
type Feature struct {
	ID    int
	Score float64
}

// NewFeature creates a new feature with the specified ID and score.
func NewFeature(id int, score float64) Feature {
	return Feature{id, score}
}

// Features is a sparse document vector. Absent IDs have a score of zero.
type Features []Feature

func (ff Features) Len() int           { return len(ff) }
func (ff Features) Swap(i, j int)      { ff[i], ff[j] = ff[j], ff[i] }
func (ff Features) Less(i, j int) bool { return ff[i].ID < ff[j].ID }

// Dot is the inner product with a dense weight vector.
func (ff Features) Dot(w []float64) float64 {
	var s float64
	for _, f := range ff {
		if f.ID < len(w) {
			s += f.Score * w[f.ID]
		}
	}
	return s
}

// Normalise scales the features to unit euclidean length. A zero vector is left unchanged.
func (ff Features) Normalise() {
	var sq float64
	for _, f := range ff {
		sq += f.Score * f.Score
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range ff {
		ff[i].Score /= norm
	}
}

func (ff Features) sortByID() {
	sort.Sort(ff)
}
