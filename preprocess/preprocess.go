// Package preprocess handles normalisation of plot text before it is tokenised.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/dan-locke/clean-html"
	"github.com/hscells/go-unidecode"
	"github.com/pkg/errors"
	"github.com/reiver/go-porterstemmer"
)

// TextProcessor is applied to document text before tokenising.
type TextProcessor func(text string) string

var (
	alphanum = regexp.MustCompile("[^a-zA-Z0-9 ]+")
	numbers  = regexp.MustCompile("[0-9]")
	spaces   = regexp.MustCompile(" +")
)

// Lowercase transforms all capital letters to lowercase.
func Lowercase(text string) string {
	return strings.ToLower(text)
}

// AlphaNum removes all non-alphanumeric characters.
func AlphaNum(text string) string {
	return spaces.ReplaceAllString(alphanum.ReplaceAllString(text, " "), " ")
}

// StripNumbers removes digits.
func StripNumbers(text string) string {
	return numbers.ReplaceAllString(text, "")
}

// RemoveStopwords removes English stop words.
func RemoveStopwords(text string) string {
	return stopwords.CleanString(text, "en", false)
}

// Stem replaces every whitespace separated word with its Porter stem.
func Stem(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = porterstemmer.StemString(w)
	}
	return strings.Join(words, " ")
}

// ASCII transliterates text into its closest ASCII representation.
func ASCII(text string) string {
	return unidecode.Unidecode(text)
}

// StripHTML keeps only the text portions of any markup in the document.
func StripHTML(text string) string {
	portions, err := clean_html.TextPos([]byte(text))
	if err != nil {
		return text
	}
	var b strings.Builder
	for i := range portions.Positions {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text[portions.Positions[i][0]:portions.Positions[i][1]])
	}
	return b.String()
}

// Processors maps configuration names onto processors.
var Processors = map[string]TextProcessor{
	"lowercase": Lowercase,
	"alphanum":  AlphaNum,
	"numbers":   StripNumbers,
	"stopwords": RemoveStopwords,
	"stem":      Stem,
	"ascii":     ASCII,
	"html":      StripHTML,
}

// Lookup resolves processor names, in order.
func Lookup(names ...string) ([]TextProcessor, error) {
	processors := make([]TextProcessor, 0, len(names))
	for _, name := range names {
		p, ok := Processors[strings.TrimSpace(name)]
		if !ok {
			return nil, errors.Errorf("unknown text processor %q", name)
		}
		processors = append(processors, p)
	}
	return processors, nil
}

// ProcessText applies each processor to the text in turn.
func ProcessText(text string, processors ...TextProcessor) string {
	for _, p := range processors {
		text = p(text)
	}
	return text
}
