package analysis

// TermCount counts the occurrences of each term in a tokenised document.
func TermCount(terms []string) map[string]float64 {
	counts := make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}
