package cmd

import (
	"strconv"
	"strings"

	"github.com/hscells/genre"
	"github.com/hscells/genre/analysis"
	"github.com/hscells/genre/eval"
	"github.com/hscells/genre/output"
	"github.com/hscells/genre/preprocess"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Properties loads pipeline components from a properties file.
func Properties(path string) ([]func() interface{}, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return Components(p)
}

// Components converts the recognised keys into pipeline components:
//
//	max_features = 5000
//	fallback     = unknown
//	genres       = action, comedy     (unset or empty learns genres from the training data)
//	tokeniser    = word | prose
//	preprocess   = alphanum, numbers, stopwords, stem, ascii, html
//	measures     = accuracy, precision, recall, f1, f0.5, f3, hamming
//	metrics      = text | json
func Components(p *properties.Properties) ([]func() interface{}, error) {
	var components []func() interface{}

	if v, ok := p.Get("max_features"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return nil, errors.Errorf("max_features: %q is not a non-negative integer", v)
		}
		components = append(components, genre.MaxFeatures(n))
	}
	if v, ok := p.Get("fallback"); ok {
		components = append(components, genre.Fallback(strings.TrimSpace(v)))
	}
	if v, ok := p.Get("genres"); ok {
		components = append(components, genre.Genres(list(v)...))
	}
	if v, ok := p.Get("tokeniser"); ok {
		t, ok := analysis.Tokenisers[strings.TrimSpace(v)]
		if !ok {
			return nil, errors.Errorf("tokeniser: unknown tokeniser %q", v)
		}
		components = append(components, genre.Tokenise(t))
	}
	if v, ok := p.Get("preprocess"); ok {
		processors, err := preprocess.Lookup(list(v)...)
		if err != nil {
			return nil, errors.Wrap(err, "preprocess")
		}
		components = append(components, genre.Preprocess(processors...))
	}
	if v, ok := p.Get("measures"); ok {
		measures, err := eval.Lookup(list(v)...)
		if err != nil {
			return nil, errors.Wrap(err, "measures")
		}
		if len(measures) == 0 {
			return nil, errors.New("measures: no measures given")
		}
		components = append(components, genre.Evaluation(measures...))
	}
	if v, ok := p.Get("metrics"); ok {
		f, ok := output.EvaluationFormatters[strings.TrimSpace(v)]
		if !ok {
			return nil, errors.Errorf("metrics: unknown format %q", v)
		}
		components = append(components, genre.EvaluationOutput(f))
	}
	return components, nil
}

func list(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}
