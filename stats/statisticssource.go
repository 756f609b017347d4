// Package stats provides collection statistics for weighting terms.
package stats

import (
	"math"
)

// StatisticsSource represents the way statistics are calculated for a collection.
type StatisticsSource interface {
	DocumentFrequency(term string) (float64, error)
	TotalTermFrequency(term string) (float64, error)
	InverseDocumentFrequency(term string) (float64, error)
	VocabularySize() (float64, error)
	CollectionSize() (float64, error)
}

// MemoryStatisticsSource accumulates statistics over documents held in memory.
type MemoryStatisticsSource struct {
	n   float64
	df  map[string]float64
	ttf map[string]float64
}

// NewMemoryStatisticsSource creates an empty collection.
func NewMemoryStatisticsSource() *MemoryStatisticsSource {
	return &MemoryStatisticsSource{
		df:  make(map[string]float64),
		ttf: make(map[string]float64),
	}
}

// Add records one document given its term counts.
func (m *MemoryStatisticsSource) Add(counts map[string]float64) {
	m.n++
	for term, tf := range counts {
		m.df[term]++
		m.ttf[term] += tf
	}
}

// Terms returns every term seen in the collection, in no particular order.
func (m *MemoryStatisticsSource) Terms() []string {
	terms := make([]string, 0, len(m.df))
	for term := range m.df {
		terms = append(terms, term)
	}
	return terms
}

// DocumentFrequency is the number of documents containing term.
func (m *MemoryStatisticsSource) DocumentFrequency(term string) (float64, error) {
	return m.df[term], nil
}

// TotalTermFrequency is the number of occurrences of term across the collection.
func (m *MemoryStatisticsSource) TotalTermFrequency(term string) (float64, error) {
	return m.ttf[term], nil
}

// InverseDocumentFrequency is the smoothed idf, ln((1+N)/(1+df)) + 1. Smoothing behaves as if an extra
// document containing every term had been seen, so unseen terms never divide by zero.
func (m *MemoryStatisticsSource) InverseDocumentFrequency(term string) (float64, error) {
	return math.Log((1+m.n)/(1+m.df[term])) + 1, nil
}

// VocabularySize is the number of distinct terms.
func (m *MemoryStatisticsSource) VocabularySize() (float64, error) {
	return float64(len(m.df)), nil
}

// CollectionSize is the number of documents added.
func (m *MemoryStatisticsSource) CollectionSize() (float64, error) {
	return m.n, nil
}
