package metrics

import (
	"fmt"
	"math"

	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
)

// Validation scores a stored classification run against labeled data.
type Validation struct {
	Metrics

	FalsePositives int
	// FalsePositiveRate is the share of true hams predicted spam, as a
	// percentage; NaN without true hams.
	FalsePositiveRate float64
}

// Validate correlates output with truth row by row. Both must have the same
// length and the same id at every position, otherwise a CorrelationError is
// returned. Rows on either side must be labeled.
func Validate(output, truth []dataset.Record) (Validation, error) {
	if len(output) != len(truth) {
		return Validation{}, errors.NewLengthCorrelationError(len(output), len(truth))
	}

	var c Counts
	for i := range output {
		out, want := output[i], truth[i]
		if out.ID != want.ID {
			return Validation{}, errors.NewCorrelationError(i, out.ID, want.ID)
		}
		if !out.Label.IsLabeled() || !want.Label.IsLabeled() {
			return Validation{}, errors.NewValueError("Validate", fmt.Sprintf("row %d (id %d) is unlabeled", i, out.ID))
		}
		c.Add(want.Label, out.Label.IsSpam())
	}

	m, err := c.Metrics("Validate")
	if err != nil {
		return Validation{}, err
	}

	v := Validation{Metrics: m, FalsePositives: c.FalsePositives}
	if c.Hams == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("false_positive_rate", "no true ham samples", math.NaN()))
		v.FalsePositiveRate = math.NaN()
	} else {
		v.FalsePositiveRate = percent(c.FalsePositives, c.Hams)
	}
	return v, nil
}
