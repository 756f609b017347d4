package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hscells/genre/output"
)

func TestWritePredictions(t *testing.T) {
	var b bytes.Buffer
	err := output.WritePredictions(&b, []output.Prediction{
		{Name: "Movie C", Genres: []string{"action", "comedy"}},
		{Name: "Movie D", Genres: []string{"unknown"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "Movie C ::: action, comedy\nMovie D ::: unknown\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestTextEvaluationFormatter(t *testing.T) {
	s, err := output.TextEvaluationFormatter(map[string]float64{
		"Accuracy":  0.5,
		"Precision": 0.756,
		"Recall":    1,
		"F1-score":  0.8333,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "\n\nModel Evaluation Metrics: \nAccuracy: 50.00%\nPrecision: 0.76\nRecall: 1.00\nF1-score: 0.83\n"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestTextEvaluationFormatterPartial(t *testing.T) {
	s, err := output.TextEvaluationFormatter(map[string]float64{
		"Accuracy":    1,
		"HammingLoss": 0.125,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "\n\nModel Evaluation Metrics: \nAccuracy: 100.00%\nHammingLoss: 0.12\n"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestTextEvaluationFormatterOrder(t *testing.T) {
	s, err := output.TextEvaluationFormatter(map[string]float64{
		"F3-score":  0.5,
		"Recall":    0.25,
		"Precision": 0.75,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "\n\nModel Evaluation Metrics: \nPrecision: 0.75\nRecall: 0.25\nF3-score: 0.50\n"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestJsonEvaluationFormatter(t *testing.T) {
	s, err := output.JsonEvaluationFormatter(map[string]float64{"Accuracy": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatal(err)
	}
	if m["Accuracy"] != 0.5 {
		t.Errorf("got %v", m)
	}
}

func TestCsvMeasurementFormatter(t *testing.T) {
	s, err := output.CsvMeasurementFormatter(map[string]map[string]float64{
		"crime":  {"Precision": 1, "Recall": 0.5},
		"action": {"Precision": 0.5, "Recall": 1},
	}, []string{"Precision", "Recall"})
	if err != nil {
		t.Fatal(err)
	}
	want := "Genre,Precision,Recall\naction,0.5000,1.0000\ncrime,1.0000,0.5000\n"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}
