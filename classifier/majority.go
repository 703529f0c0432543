package classifier

import (
	"github.com/kpuputti/spamham/dataset"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/pkg/log"
)

// MajorityField is a heuristic that learns the "spam columns", the features
// set in at least fieldFreq of the spam training samples, and classifies a
// datum as spam when at least fieldsFreq of those columns are set in it.
type MajorityField struct {
	*Base

	fieldFreq   float64
	fieldsFreq  float64
	spamColumns []int
}

// NewMajorityField creates a MajorityField classifier. Thresholds outside
// [0, 1] are rejected with a ValidationError.
func NewMajorityField(ds *dataset.Dataset, opts ...Option) (*MajorityField, error) {
	o := buildOptions(opts)
	if err := validateFreq("field_freq", o.fieldFreq); err != nil {
		return nil, err
	}
	if err := validateFreq("fields_freq", o.fieldsFreq); err != nil {
		return nil, err
	}
	return &MajorityField{
		Base:       newBase("DummyClassifier", ds, o),
		fieldFreq:  o.fieldFreq,
		fieldsFreq: o.fieldsFreq,
	}, nil
}

func validateFreq(param string, v float64) error {
	// also rejects NaN
	if !(v >= 0 && v <= 1) {
		return errors.NewValidationError(param, "must be in [0, 1]", v)
	}
	return nil
}

// Train implements Classifier.
func (c *MajorityField) Train() error {
	if err := c.beginTrain(); err != nil {
		return err
	}

	spams := 0
	counts := make([]int, c.numFeatures)
	for _, d := range c.split.Train {
		if !d.Label.IsSpam() {
			continue
		}
		spams++
		for i := range counts {
			if d.IsSet(i) {
				counts[i]++
			}
		}
	}

	needed := c.fieldFreq * float64(spams)
	c.spamColumns = c.spamColumns[:0]
	for i, n := range counts {
		if n > 0 && float64(n) >= needed {
			c.spamColumns = append(c.spamColumns, i)
		}
	}

	c.logger.Debug("learned spam columns",
		log.OperationKey, log.OperationTrain,
		log.SpamColumnsKey, len(c.spamColumns),
		log.ThresholdKey, c.fieldFreq,
	)
	c.finishTrain()
	return nil
}

// SpamColumns returns the feature indices learned in Train, ascending.
func (c *MajorityField) SpamColumns() []int {
	out := make([]int, len(c.spamColumns))
	copy(out, c.spamColumns)
	return out
}

// Classify implements Classifier. Without learned spam columns every datum
// is ham.
func (c *MajorityField) Classify(d dataset.Datum) (bool, error) {
	if err := c.state.RequireTrained("Classify"); err != nil {
		return false, err
	}
	if d.NumFeatures() != c.numFeatures {
		return false, errors.NewDimensionError("MajorityField.Classify", c.numFeatures, d.NumFeatures(), 1)
	}
	if len(c.spamColumns) == 0 {
		return false, nil
	}

	set := 0
	for _, col := range c.spamColumns {
		if d.IsSet(col) {
			set++
		}
	}
	return float64(set) >= c.fieldsFreq*float64(len(c.spamColumns)), nil
}
