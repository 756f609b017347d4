package genre

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/hscells/genre/eval"
	"github.com/hscells/genre/learning"
	"github.com/hscells/genre/output"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// evaluate predicts the evaluation movies again and scores them against the training label matrix,
// truncated to the same number of rows. The evaluation file carries no genres, so the first training
// rows stand in as the truth; the scores do not describe the evaluation movies.
func (p Pipeline) evaluate(res *Result, clf learning.MultiLabelClassifier, X []learning.Features, Y *mat.Dense) error {
	pred, err := clf.Predict(X)
	if err != nil {
		return err
	}

	if tr, _ := Y.Dims(); tr < len(X) {
		log.Printf("warning: %d training rows for %d predictions, evaluating the first %d only", tr, len(X), tr)
	}
	truth, pred, err := eval.Align(Y, pred)
	if err != nil {
		return err
	}

	res.Evaluation = eval.Evaluate(p.Evaluations, truth, pred)
	s, err := p.EvaluationFormatter(res.Evaluation)
	if err != nil {
		return errors.Wrap(err, "formatting evaluation")
	}
	if err := appendFile(p.OutputPath, s); err != nil {
		return err
	}

	if len(p.ReportPath) > 0 {
		measures := []eval.Evaluator{eval.Precision, eval.Recall, eval.F1Measure}
		res.GenreEvaluation = eval.EvaluateLabels(measures, truth, pred, res.Genres)
		headers := make([]string, len(measures))
		for i, m := range measures {
			headers[i] = m.Name()
		}
		report, err := output.CsvMeasurementFormatter(res.GenreEvaluation, headers)
		if err != nil {
			return errors.Wrap(err, "formatting report")
		}
		if err := ioutil.WriteFile(p.ReportPath, []byte(report), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", p.ReportPath)
		}
	}
	return nil
}

func writePredictions(path string, predictions []output.Prediction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	return output.WritePredictions(f, predictions)
}

func appendFile(path, s string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	_, err = f.WriteString(s)
	return err
}
