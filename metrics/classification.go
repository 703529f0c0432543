// Package metrics scores spam/ham predictions: accuracy, precision and
// recall as percentages, and the false positive rate of a stored run.
package metrics

import (
	"math"

	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
)

// Predictor is anything that labels a datum; classifiers satisfy it.
type Predictor interface {
	Classify(d dataset.Datum) (bool, error)
}

// Counts are the raw tallies behind Metrics.
type Counts struct {
	Spams           int // true spams
	Hams            int // true hams
	ClassifiedSpams int // predicted spams
	CorrectSpams    int // true spams predicted spam
	Correct         int
	Incorrect       int
	FalsePositives  int // true hams predicted spam
}

// Add tallies one labeled datum and its prediction.
func (c *Counts) Add(actual dataset.Label, predictedSpam bool) {
	if actual.IsSpam() {
		c.Spams++
	} else {
		c.Hams++
	}
	if predictedSpam {
		c.ClassifiedSpams++
	}
	if actual.IsSpam() == predictedSpam {
		c.Correct++
		if predictedSpam {
			c.CorrectSpams++
		}
	} else {
		c.Incorrect++
		if predictedSpam {
			c.FalsePositives++
		}
	}
}

// Total returns the number of tallied datums.
func (c Counts) Total() int {
	return c.Correct + c.Incorrect
}

// Metrics holds percentages in [0, 100]. Precision is 0 when nothing was
// predicted spam; Recall is NaN when there were no true spams.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	Counts    Counts
}

// Metrics computes the percentages. op names the caller in errors.
func (c Counts) Metrics(op string) (Metrics, error) {
	if c.Total() == 0 {
		return Metrics{}, errors.NewEmptyEvaluationSetError(op)
	}

	m := Metrics{
		Accuracy: percent(c.Correct, c.Total()),
		Counts:   c,
	}

	if c.ClassifiedSpams == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted spam samples", 0))
		m.Precision = 0
	} else {
		m.Precision = percent(c.CorrectSpams, c.ClassifiedSpams)
	}

	if c.Spams == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true spam samples", math.NaN()))
		m.Recall = math.NaN()
	} else {
		m.Recall = percent(c.CorrectSpams, c.Spams)
	}

	return m, nil
}

func percent(part, whole int) float64 {
	return 100 * float64(part) / float64(whole)
}

// Evaluate classifies every datum of set with p and scores the predictions
// against the labels. Every datum must be labeled. Errors returned by p are
// wrapped with the offending datum id.
func Evaluate(p Predictor, set []dataset.Datum) (Metrics, error) {
	var c Counts
	for _, d := range set {
		if !d.Label.IsLabeled() {
			return Metrics{}, errors.NewValueError("Evaluate", "evaluation set contains unlabeled datum")
		}
		isSpam, err := p.Classify(d)
		if err != nil {
			return Metrics{}, errors.Wrapf(err, "evaluate datum %d", d.ID)
		}
		c.Add(d.Label, isSpam)
	}
	return c.Metrics("Evaluate")
}
