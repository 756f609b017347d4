package learning

import (
	"github.com/pkg/errors"
	"github.com/xtgo/set"
	"gonum.org/v1/gonum/mat"
)

// MultiLabelBinariser converts sets of labels into 0/1 rows over a fixed list of classes.
type MultiLabelBinariser struct {
	fixed   bool
	classes []string
	index   map[string]int
}

// NewMultiLabelBinariser creates a binariser. When classes are given they are used, in that order, and
// Fit does not change them; otherwise Fit learns the sorted set of labels seen.
func NewMultiLabelBinariser(classes ...string) *MultiLabelBinariser {
	b := &MultiLabelBinariser{}
	if len(classes) > 0 {
		b.fixed = true
		b.setClasses(append([]string(nil), classes...))
	}
	return b
}

func (b *MultiLabelBinariser) setClasses(classes []string) {
	b.classes = classes
	b.index = make(map[string]int, len(classes))
	for i, c := range classes {
		if _, ok := b.index[c]; !ok {
			b.index[c] = i
		}
	}
}

// Fit learns the classes from labels unless they were fixed at construction.
func (b *MultiLabelBinariser) Fit(labels [][]string) error {
	if b.fixed {
		return nil
	}
	var all []string
	for _, l := range labels {
		all = append(all, l...)
	}
	classes := set.Strings(all)
	if len(classes) == 0 {
		return errors.Wrap(ErrEmpty, "fitting binariser: no labels")
	}
	b.setClasses(classes)
	return nil
}

// Transform produces one row per label set. Labels that are not classes are ignored.
func (b *MultiLabelBinariser) Transform(labels [][]string) (*mat.Dense, error) {
	if b.index == nil {
		return nil, ErrNotFitted
	}
	if len(labels) == 0 {
		return nil, errors.Wrap(ErrEmpty, "binarising labels")
	}
	m := mat.NewDense(len(labels), len(b.classes), nil)
	for i, l := range labels {
		for _, label := range l {
			if j, ok := b.index[label]; ok {
				m.Set(i, j, 1)
			}
		}
	}
	return m, nil
}

// FitTransform fits and transforms the same labels.
func (b *MultiLabelBinariser) FitTransform(labels [][]string) (*mat.Dense, error) {
	if err := b.Fit(labels); err != nil {
		return nil, err
	}
	return b.Transform(labels)
}

// InverseTransform maps each row back to the classes set in it, in class order.
func (b *MultiLabelBinariser) InverseTransform(m mat.Matrix) [][]string {
	r, c := m.Dims()
	labels := make([][]string, r)
	for i := 0; i < r; i++ {
		labels[i] = []string{}
		for j := 0; j < c && j < len(b.classes); j++ {
			if m.At(i, j) != 0 {
				labels[i] = append(labels[i], b.classes[j])
			}
		}
	}
	return labels
}

// Classes are the column names.
func (b *MultiLabelBinariser) Classes() []string {
	return append([]string(nil), b.classes...)
}
