// Package analysis provides tokenisers and term counting for plot text.
package analysis

import (
	"regexp"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
)

// Tokeniser splits a document into terms.
type Tokeniser interface {
	Tokenise(text string) ([]string, error)
}

var word = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// WordTokeniser extracts every run of two or more letters, digits or underscores. Single character
// words are discarded.
type WordTokeniser struct{}

// Tokenise implements Tokeniser.
func (WordTokeniser) Tokenise(text string) ([]string, error) {
	return word.FindAllString(text, -1), nil
}

// ProseTokeniser uses the prose tokeniser and keeps tokens that contain a word character.
type ProseTokeniser struct{}

var hasWord = regexp.MustCompile(`[\p{L}\p{N}]`)

// Tokenise implements Tokeniser.
func (ProseTokeniser) Tokenise(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, errors.Wrap(err, "prose tokenise")
	}
	var terms []string
	for _, tok := range doc.Tokens() {
		if hasWord.MatchString(tok.Text) {
			terms = append(terms, tok.Text)
		}
	}
	return terms, nil
}

// Tokenisers maps configuration names onto tokenisers.
var Tokenisers = map[string]Tokeniser{
	"word":  WordTokeniser{},
	"prose": ProseTokeniser{},
}
