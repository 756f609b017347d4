// Package genre provides a pipeline that trains a multi-label genre classifier on movie plots, predicts the
// genres of a held-out set of movies and evaluates the predictions.
package genre

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/hscells/genre/analysis"
	"github.com/hscells/genre/corpus"
	"github.com/hscells/genre/eval"
	"github.com/hscells/genre/learning"
	"github.com/hscells/genre/output"
	"github.com/hscells/genre/preprocess"
	"github.com/pkg/errors"
)

const (
	DefaultTrainPath   = "train_data.txt"
	DefaultTestPath    = "test_data.txt"
	DefaultOutputPath  = "model_evaluation.txt"
	DefaultMaxFeatures = 5000
	DefaultFallback    = "unknown"
)

// DefaultGenres is a fixed genre vocabulary, used when passed to Genres. By default the vocabulary is
// learnt from the training data.
var DefaultGenres = []string{
	"action", "adult", "adventure", "animation", "biography", "comedy",
	"crime", "documentary", "fantasy", "game-show", "history",
}

// Pipeline contains everything needed to train, predict and evaluate in one run.
type Pipeline struct {
	TrainPath  string
	TestPath   string
	OutputPath string
	// ReportPath, when set, receives per-genre scores as CSV.
	ReportPath string

	// Genres are the label columns. When empty they are learnt from the training data.
	Genres      []string
	Fallback    string
	MaxFeatures int

	// Preprocess is applied to plots after lower-casing.
	Preprocess          []preprocess.TextProcessor
	Tokeniser           analysis.Tokeniser
	Evaluations         []eval.Evaluator
	EvaluationFormatter output.EvaluationFormatter
	// ProgressOutput receives the progress bars; nil disables them.
	ProgressOutput io.Writer
}

type genreVocabulary []string
type fallbackLabel string
type maxFeatures int
type reportPath string
type progressOutput struct{ io.Writer }

// Genres sets the genre vocabulary. With no genres the vocabulary is learnt from the training data.
func Genres(genres ...string) func() interface{} {
	return func() interface{} {
		return genreVocabulary(genres)
	}
}

// Fallback sets the label written for movies with no predicted genre.
func Fallback(label string) func() interface{} {
	return func() interface{} {
		return fallbackLabel(label)
	}
}

// MaxFeatures caps the number of terms in the vectoriser vocabulary.
func MaxFeatures(n int) func() interface{} {
	return func() interface{} {
		return maxFeatures(n)
	}
}

// Preprocess adds text processors to the pipeline.
func Preprocess(processor ...preprocess.TextProcessor) func() interface{} {
	return func() interface{} {
		return processor
	}
}

// Tokenise sets the tokeniser.
func Tokenise(t analysis.Tokeniser) func() interface{} {
	return func() interface{} {
		return t
	}
}

// Evaluation sets the measures computed over the predictions.
func Evaluation(measures ...eval.Evaluator) func() interface{} {
	return func() interface{} {
		return measures
	}
}

// EvaluationOutput sets how the measures are written.
func EvaluationOutput(formatter output.EvaluationFormatter) func() interface{} {
	return func() interface{} {
		return formatter
	}
}

// Report writes per-genre scores to path.
func Report(path string) func() interface{} {
	return func() interface{} {
		return reportPath(path)
	}
}

// Progress writes progress bars to w.
func Progress(w io.Writer) func() interface{} {
	return func() interface{} {
		return progressOutput{w}
	}
}

// NewPipeline creates a new pipeline. The input and output paths are required. Additional components are
// provided via the optional functional arguments.
func NewPipeline(train, test, out string, components ...func() interface{}) Pipeline {
	p := Pipeline{
		TrainPath:           train,
		TestPath:            test,
		OutputPath:          out,
		Fallback:            DefaultFallback,
		MaxFeatures:         DefaultMaxFeatures,
		Tokeniser:           analysis.WordTokeniser{},
		Evaluations:         []eval.Evaluator{eval.Accuracy, eval.Precision, eval.Recall, eval.F1Measure},
		EvaluationFormatter: output.TextEvaluationFormatter,
	}

	for _, component := range components {
		switch v := component().(type) {
		case genreVocabulary:
			p.Genres = v
		case fallbackLabel:
			p.Fallback = string(v)
		case maxFeatures:
			p.MaxFeatures = int(v)
		case reportPath:
			p.ReportPath = string(v)
		case progressOutput:
			p.ProgressOutput = v.Writer
		case []preprocess.TextProcessor:
			p.Preprocess = append(p.Preprocess, v...)
		case []eval.Evaluator:
			p.Evaluations = v
		case output.EvaluationFormatter:
			p.EvaluationFormatter = v
		case analysis.Tokeniser:
			p.Tokeniser = v
		}
	}

	return p
}

// Execute runs the pipeline: train on the training file, write a prediction line per evaluation movie to
// the output file, then append the evaluation of those predictions.
func (p Pipeline) Execute() (Result, error) {
	res := Result{RunID: uuid.New().String()}
	log.Printf("run %s: training on %s, predicting %s", res.RunID, p.TrainPath, p.TestPath)

	var train []corpus.TrainingRecord
	err := p.stage("Loading Train Data", func() (err error) {
		train, err = corpus.LoadTraining(p.TrainPath)
		return
	})
	if err != nil {
		log.Printf("Error loading train_data: %v", err)
		return res, err
	}

	plots := make([]string, len(train))
	labels := make([][]string, len(train))
	for i, r := range train {
		plots[i] = r.Plot
		labels[i] = r.Genres()
	}

	binariser := learning.NewMultiLabelBinariser(p.Genres...)
	Y, err := binariser.FitTransform(labels)
	if err != nil {
		return res, errors.Wrap(err, "encoding genres")
	}
	res.Genres = binariser.Classes()

	vectoriser := learning.NewTfidfVectoriser(p.MaxFeatures)
	vectoriser.Preprocess = append(vectoriser.Preprocess, p.Preprocess...)
	if p.Tokeniser != nil {
		vectoriser.Tokeniser = p.Tokeniser
	}
	var X []learning.Features
	err = p.stage("Vectorizing Training Data", func() (err error) {
		X, err = vectoriser.FitTransform(plots)
		return
	})
	if err != nil {
		return res, err
	}

	clf := learning.NewMultiOutputClassifier()
	err = p.stage("Training Model", func() error {
		return clf.Fit(X, Y, vectoriser.Dimensions())
	})
	if err != nil {
		return res, err
	}

	var test []corpus.EvaluationRecord
	err = p.stage("Loading Test Data", func() (err error) {
		test, err = corpus.LoadEvaluation(p.TestPath)
		return
	})
	if err != nil {
		log.Printf("Error loading test_data: %v", err)
		return res, err
	}

	names := make([]string, len(test))
	testPlots := make([]string, len(test))
	for i, r := range test {
		names[i] = r.Name
		testPlots[i] = r.Plot
	}

	var XTest []learning.Features
	err = p.stage("Vectorizing Test Data", func() (err error) {
		XTest, err = vectoriser.Transform(testPlots)
		return
	})
	if err != nil {
		return res, err
	}

	err = p.stage("Predicting on the Test Data", func() error {
		pred, err := clf.Predict(XTest)
		if err != nil {
			return err
		}
		res.Predictions = Label(names, binariser.InverseTransform(pred), p.Fallback)
		return nil
	})
	if err != nil {
		return res, err
	}
	log.Printf("predicted %d movies over %d genres", len(res.Predictions), len(res.Genres))

	if err := writePredictions(p.OutputPath, res.Predictions); err != nil {
		return res, err
	}

	if err := p.evaluate(&res, clf, XTest, Y); err != nil {
		return res, err
	}

	log.Printf("run %s: wrote %s", res.RunID, p.OutputPath)
	return res, nil
}
