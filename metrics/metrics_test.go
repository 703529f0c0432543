package metrics

import (
	"math"
	"testing"

	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
)

// oracle predicts from a fixed id -> spam table.
type oracle map[int]bool

func (o oracle) Classify(d dataset.Datum) (bool, error) {
	return o[d.ID], nil
}

type failing struct{}

func (failing) Classify(d dataset.Datum) (bool, error) {
	return false, errors.NewNotTrainedError("failing", "Classify")
}

// captureWarnings collects warnings for the duration of the test.
func captureWarnings(t *testing.T) *[]error {
	t.Helper()
	var got []error
	errors.SetWarningHandler(func(w error) { got = append(got, w) })
	t.Cleanup(func() { errors.SetWarningHandler(func(error) {}) })
	return &got
}

// labeled returns n datums; ids below spams are spam.
func labeled(n, spams int) []dataset.Datum {
	data := make([]dataset.Datum, n)
	for i := range data {
		data[i] = dataset.Datum{ID: i, Label: dataset.LabelOf(i < spams), Features: []int{0}}
	}
	return data
}

func approx(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		set       []dataset.Datum
		predict   oracle
		accuracy  float64
		precision float64
		recall    float64
		warnings  int
	}{
		{
			name:      "perfect",
			set:       labeled(10, 4),
			predict:   oracle{0: true, 1: true, 2: true, 3: true},
			accuracy:  100,
			precision: 100,
			recall:    100,
		},
		{
			name:      "half of the spam found",
			set:       labeled(10, 4),
			predict:   oracle{0: true, 1: true, 9: true},
			accuracy:  70,
			precision: 100 * 2.0 / 3.0,
			recall:    50,
		},
		{
			name:      "no spam predicted",
			set:       labeled(10, 4),
			predict:   oracle{},
			accuracy:  60,
			precision: 0,
			recall:    0,
			warnings:  1,
		},
		{
			name:      "no true spam",
			set:       labeled(5, 0),
			predict:   oracle{2: true},
			accuracy:  80,
			precision: 0,
			recall:    math.NaN(),
			warnings:  1,
		},
		{
			name:      "no spam anywhere",
			set:       labeled(5, 0),
			predict:   oracle{},
			accuracy:  100,
			precision: 0,
			recall:    math.NaN(),
			warnings:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := captureWarnings(t)

			m, err := Evaluate(tt.predict, tt.set)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if !approx(m.Accuracy, tt.accuracy) {
				t.Errorf("Accuracy = %v, want %v", m.Accuracy, tt.accuracy)
			}
			if !approx(m.Precision, tt.precision) {
				t.Errorf("Precision = %v, want %v", m.Precision, tt.precision)
			}
			if !approx(m.Recall, tt.recall) {
				t.Errorf("Recall = %v, want %v", m.Recall, tt.recall)
			}
			if len(*warnings) != tt.warnings {
				t.Errorf("got %d warnings %v, want %d", len(*warnings), *warnings, tt.warnings)
			}
			for _, w := range *warnings {
				var umw *errors.UndefinedMetricWarning
				if !errors.As(w, &umw) {
					t.Errorf("warning %T, want *UndefinedMetricWarning", w)
				}
			}
			if m.Counts.Total() != len(tt.set) {
				t.Errorf("Counts.Total() = %d, want %d", m.Counts.Total(), len(tt.set))
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	captureWarnings(t)

	t.Run("empty set", func(t *testing.T) {
		_, err := Evaluate(oracle{}, nil)
		var eerr *errors.EmptyEvaluationSetError
		if !errors.As(err, &eerr) {
			t.Errorf("Evaluate() error = %v, want *EmptyEvaluationSetError", err)
		}
	})

	t.Run("unlabeled datum", func(t *testing.T) {
		set := append(labeled(3, 1), dataset.Datum{ID: 3, Label: dataset.Unlabeled})
		_, err := Evaluate(oracle{}, set)
		var verr *errors.ValueError
		if !errors.As(err, &verr) {
			t.Errorf("Evaluate() error = %v, want *ValueError", err)
		}
	})

	t.Run("classifier error is propagated", func(t *testing.T) {
		_, err := Evaluate(failing{}, labeled(3, 1))
		var nte *errors.NotTrainedError
		if !errors.As(err, &nte) {
			t.Errorf("Evaluate() error = %v, want wrapped *NotTrainedError", err)
		}
	})
}

func records(labels ...dataset.Label) []dataset.Record {
	out := make([]dataset.Record, len(labels))
	for i, l := range labels {
		out[i] = dataset.Record{ID: i + 1, Label: l}
	}
	return out
}

func TestValidate(t *testing.T) {
	S, H := dataset.Spam, dataset.Ham
	tests := []struct {
		name           string
		output         []dataset.Record
		truth          []dataset.Record
		accuracy       float64
		falsePositives int
		fpRate         float64
	}{
		{
			name:     "identical",
			output:   records(S, H, H, S),
			truth:    records(S, H, H, S),
			accuracy: 100,
			fpRate:   0,
		},
		{
			name:           "one false positive",
			output:         records(S, S, H, S),
			truth:          records(S, H, H, S),
			accuracy:       75,
			falsePositives: 1,
			fpRate:         50,
		},
		{
			name:     "no hams",
			output:   records(S, H),
			truth:    records(S, S),
			accuracy: 50,
			fpRate:   math.NaN(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureWarnings(t)

			v, err := Validate(tt.output, tt.truth)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !approx(v.Accuracy, tt.accuracy) {
				t.Errorf("Accuracy = %v, want %v", v.Accuracy, tt.accuracy)
			}
			if v.FalsePositives != tt.falsePositives {
				t.Errorf("FalsePositives = %d, want %d", v.FalsePositives, tt.falsePositives)
			}
			if !approx(v.FalsePositiveRate, tt.fpRate) {
				t.Errorf("FalsePositiveRate = %v, want %v", v.FalsePositiveRate, tt.fpRate)
			}
		})
	}
}

func TestValidateCorrelation(t *testing.T) {
	S, H := dataset.Spam, dataset.Ham

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Validate(records(S, H), records(S, H, H))
		var cerr *errors.CorrelationError
		if !errors.As(err, &cerr) {
			t.Fatalf("Validate() error = %v, want *CorrelationError", err)
		}
		if cerr.Index != -1 {
			t.Errorf("Index = %d, want -1", cerr.Index)
		}
	})

	t.Run("id mismatch", func(t *testing.T) {
		output := records(S, H, H)
		output[1].ID = 42
		_, err := Validate(output, records(S, H, H))
		var cerr *errors.CorrelationError
		if !errors.As(err, &cerr) {
			t.Fatalf("Validate() error = %v, want *CorrelationError", err)
		}
		if cerr.Index != 1 || cerr.OutputID != 42 || cerr.TruthID != 2 {
			t.Errorf("CorrelationError = %+v", cerr)
		}
	})

	t.Run("unlabeled row", func(t *testing.T) {
		_, err := Validate(records(S, dataset.Unlabeled), records(S, H))
		var verr *errors.ValueError
		if !errors.As(err, &verr) {
			t.Errorf("Validate() error = %v, want *ValueError", err)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		_, err := Validate(nil, nil)
		var eerr *errors.EmptyEvaluationSetError
		if !errors.As(err, &eerr) {
			t.Errorf("Validate() error = %v, want *EmptyEvaluationSetError", err)
		}
	})
}

func BenchmarkEvaluate(b *testing.B) {
	set := labeled(1000, 400)
	predict := oracle{}
	for i := 0; i < 1000; i += 3 {
		predict[i] = true
	}
	errors.SetWarningHandler(func(error) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Evaluate(predict, set)
	}
}
