package learning

import (
	"sort"

	"github.com/hscells/genre/analysis"
	"github.com/hscells/genre/preprocess"
	"github.com/hscells/genre/stats"
	"github.com/pkg/errors"
)

// TfidfVectoriser turns documents into L2 normalised tf-idf vectors over a vocabulary learnt once from
// the training documents.
type TfidfVectoriser struct {
	// MaxFeatures caps the vocabulary to the most frequent terms. Zero keeps every term.
	MaxFeatures int
	Tokeniser   analysis.Tokeniser
	Preprocess  []preprocess.TextProcessor

	vocabulary map[string]int
	idf        []float64
}

// NewTfidfVectoriser creates a vectoriser that lower-cases and word-tokenises documents.
func NewTfidfVectoriser(maxFeatures int) *TfidfVectoriser {
	return &TfidfVectoriser{
		MaxFeatures: maxFeatures,
		Tokeniser:   analysis.WordTokeniser{},
		Preprocess:  []preprocess.TextProcessor{preprocess.Lowercase},
	}
}

func (v *TfidfVectoriser) counts(doc string) (map[string]float64, error) {
	tokeniser := v.Tokeniser
	if tokeniser == nil {
		tokeniser = analysis.WordTokeniser{}
	}
	terms, err := tokeniser.Tokenise(preprocess.ProcessText(doc, v.Preprocess...))
	if err != nil {
		return nil, err
	}
	return analysis.TermCount(terms), nil
}

// Fit learns the vocabulary and idf weights. Terms are ranked by their total frequency in the
// collection, ties broken alphabetically, and the kept terms are indexed alphabetically.
func (v *TfidfVectoriser) Fit(docs []string) error {
	if len(docs) == 0 {
		return errors.Wrap(ErrEmpty, "fitting vectoriser")
	}
	s := stats.NewMemoryStatisticsSource()
	for _, doc := range docs {
		c, err := v.counts(doc)
		if err != nil {
			return err
		}
		s.Add(c)
	}

	terms := s.Terms()
	sort.Strings(terms)
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		ttf := make(map[string]float64, len(terms))
		for _, term := range terms {
			ttf[term], _ = s.TotalTermFrequency(term)
		}
		sort.SliceStable(terms, func(i, j int) bool {
			return ttf[terms[i]] > ttf[terms[j]]
		})
		terms = terms[:v.MaxFeatures]
		sort.Strings(terms)
	}
	if len(terms) == 0 {
		return errors.New("fitting vectoriser: empty vocabulary, documents contain no terms")
	}

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i], _ = s.InverseDocumentFrequency(term)
	}
	return nil
}

// Transform vectorises documents with the fitted vocabulary. Terms outside the vocabulary are dropped.
func (v *TfidfVectoriser) Transform(docs []string) ([]Features, error) {
	if v.vocabulary == nil {
		return nil, ErrNotFitted
	}
	X := make([]Features, len(docs))
	for i, doc := range docs {
		c, err := v.counts(doc)
		if err != nil {
			return nil, err
		}
		var ff Features
		for term, tf := range c {
			if id, ok := v.vocabulary[term]; ok {
				ff = append(ff, NewFeature(id, tf*v.idf[id]))
			}
		}
		ff.sortByID()
		ff.Normalise()
		X[i] = ff
	}
	return X, nil
}

// FitTransform fits the vectoriser and transforms the same documents.
func (v *TfidfVectoriser) FitTransform(docs []string) ([]Features, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Dimensions is the width of every transformed vector.
func (v *TfidfVectoriser) Dimensions() int {
	return len(v.idf)
}

// Vocabulary returns the kept terms in index order.
func (v *TfidfVectoriser) Vocabulary() []string {
	terms := make([]string, len(v.vocabulary))
	for term, i := range v.vocabulary {
		terms[i] = term
	}
	return terms
}
